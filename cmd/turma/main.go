package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"turma/internal/bootstrap"
	"turma/internal/modules/roster/dto"
	"turma/internal/platform/config"
	apperrors "turma/internal/platform/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "turma",
		Short:         "Terminal client for the student grade API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file path")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newLoginCmd(&configPath))
	root.AddCommand(newListCmd(&configPath))
	root.AddCommand(newAddCmd(&configPath))
	root.AddCommand(newUpdateCmd(&configPath))
	root.AddCommand(newRemoveCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the full-screen client",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(configPath *string) *cobra.Command {
	var username string

	login := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(username) == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "Usuário: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil {
					return err
				}
				username = strings.TrimSpace(line)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), "Senha: ")
			password, err := term.ReadPassword(int(syscall.Stdin))
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}

			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if _, err := app.SessionCLI.Login(context.Background(), username, string(password)); err != nil {
				var authErr *apperrors.AuthError
				if errors.As(err, &authErr) && authErr.Status >= 400 && authErr.Status < 500 {
					return fmt.Errorf("usuário ou senha inválidos")
				}
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "login efetuado")
			return nil
		},
	}
	login.Flags().StringVar(&username, "username", "", "username (prompted when omitted)")
	return login
}

func newListCmd(configPath *string) *cobra.Command {
	var search string
	var page int

	list := &cobra.Command{
		Use:   "list",
		Short: "List participants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			participants, err := app.RosterCLI.List(context.Background())
			if err != nil {
				return err
			}
			filtered := participants
			if search != "" {
				filtered = nil
				for _, p := range participants {
					if strings.Contains(strconv.FormatInt(p.ID, 10), search) {
						filtered = append(filtered, p)
					}
				}
			}
			start := page * 10
			if start >= len(filtered) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nenhum participante")
				return nil
			}
			end := start + 10
			if end > len(filtered) {
				end = len(filtered)
			}
			for _, p := range filtered[start:end] {
				printParticipant(cmd, p)
			}
			return nil
		},
	}
	list.Flags().StringVar(&search, "search", "", "filter by id substring")
	list.Flags().IntVar(&page, "page", 0, "zero-based page of 10")
	return list
}

func newAddCmd(configPath *string) *cobra.Command {
	var nome, idade, nota1, nota2 string

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a participant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			created, err := app.RosterCLI.Create(context.Background(), nome, idade, nota1, nota2)
			if err != nil {
				return participantError(cmd, err)
			}
			printParticipant(cmd, created)
			return nil
		},
	}
	add.Flags().StringVar(&nome, "nome", "", "name")
	add.Flags().StringVar(&idade, "idade", "", "age")
	add.Flags().StringVar(&nota1, "nota1", "", "first term grade")
	add.Flags().StringVar(&nota2, "nota2", "", "second term grade")
	return add
}

func newUpdateCmd(configPath *string) *cobra.Command {
	var nome, idade, nota1, nota2 string

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			updated, err := app.RosterCLI.Update(context.Background(), id, nome, idade, nota1, nota2)
			if err != nil {
				return participantError(cmd, err)
			}
			printParticipant(cmd, updated)
			return nil
		},
	}
	update.Flags().StringVar(&nome, "nome", "", "name")
	update.Flags().StringVar(&idade, "idade", "", "age")
	update.Flags().StringVar(&nota1, "nota1", "", "first term grade")
	update.Flags().StringVar(&nota2, "nota2", "", "second term grade")
	return update
}

func newRemoveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.RosterCLI.Remove(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "participante %d removido\n", id)
			return nil
		},
	}
}

func printParticipant(cmd *cobra.Command, p dto.ParticipantOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\tidade=%d\tnota1=%.1f\tnota2=%.1f\tmédia=%.1f\n",
		p.ID, p.Nome, p.Idade, p.NotaPrimeiroSemestre, p.NotaSegundoSemestre, p.MediaFinal)
}

// participantError prints per-field validation messages before failing, so a
// scripted caller sees the same detail the TUI renders inline.
func participantError(cmd *cobra.Command, err error) error {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]string, 0, len(vErr.Fields))
		for field := range vErr.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, vErr.Fields[field])
		}
	}
	return err
}
