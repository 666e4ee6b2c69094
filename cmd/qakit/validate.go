package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/qakit/pkg/logger"
	"github.com/dmitrymomot/qakit/pkg/validator"
)

// errInvalid is returned when the input fails validation, so main exits
// with status 1 without printing anything beyond the logged errors.
var errInvalid = errors.New("validation failed")

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a single value or a whole record",
	}
	cmd.AddCommand(
		newFormatCmd(a, "email", "Validate an email address", validator.ValidateEmail),
		newFormatCmd(a, "phone", "Validate a phone number", validator.ValidatePhone),
		newFormatCmd(a, "url", "Validate an http, https or ftp URL", validator.ValidateURL),
		newFormatCmd(a, "username", "Validate a username", validator.ValidateUsername),
		newUserCmd(a),
		newPostCmd(a),
	)
	return cmd
}

func newFormatCmd(a *app, name, short string, validate func(field, value string) *validator.Result) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.report(name, validate(name, args[0]))
		},
	}
}

func newUserCmd(a *app) *cobra.Command {
	var u validator.User

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Validate a user record",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.report("user", u.Validate())
		},
	}
	cmd.Flags().StringVar(&u.Name, "name", "", "full name")
	cmd.Flags().StringVar(&u.Username, "username", "", "username")
	cmd.Flags().StringVar(&u.Email, "email", "", "email address")
	cmd.Flags().StringVar(&u.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&u.Website, "website", "", "website URL")
	return cmd
}

func newPostCmd(a *app) *cobra.Command {
	var p validator.Post

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Validate a post record",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.report("post", p.Validate())
		},
	}
	cmd.Flags().Int64Var(&p.UserID, "user-id", 0, "id of the author")
	cmd.Flags().StringVar(&p.Title, "title", "", "post title")
	cmd.Flags().StringVar(&p.Body, "body", "", "post body")
	return cmd
}

// report logs the outcome: a DATA line for valid input, an ERROR line
// otherwise. Each message is also logged under its field name so that none
// is lost when the joined error text gets truncated.
func (a *app) report(subject string, res *validator.Result) error {
	if res.IsValid() {
		a.writer.Data("valid", true, "subject", subject)
		return nil
	}

	fields := make([]slog.Attr, 0, res.ErrorCount())
	for _, fe := range res.FieldErrors() {
		fields = append(fields, slog.String(fe.Field, fe.Message))
	}
	a.writer.Error(subject+" is invalid", res.Err(),
		"error_count", res.ErrorCount(),
		logger.Group("fields", fields...),
	)
	return errInvalid
}
