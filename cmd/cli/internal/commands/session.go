package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type LoginCmd struct {
	Username string `arg:"" help:"Account name"`
	Password string `help:"Account password" required:"" env:"BIKEHUB_PASSWORD"`
}

func (l *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	rt, err := globals.open(ctx)
	if err != nil {
		return err
	}
	if !rt.holder.Login(rt.ctx, strings.TrimSpace(l.Username), l.Password) {
		return errors.New("login failed; check your username and password")
	}
	fmt.Fprintf(globals.out(), "Logged in as %s\n", describe(rt.holder.Snapshot()))
	return nil
}

type LogoutCmd struct{}

func (l *LogoutCmd) Run(ctx context.Context, globals *Globals) error {
	rt, err := globals.open(ctx)
	if err != nil {
		return err
	}
	rt.holder.Logout(rt.ctx)
	fmt.Fprintln(globals.out(), "Logged out")
	return nil
}

type WhoamiCmd struct{}

func (w *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	rt, err := globals.open(ctx)
	if err != nil {
		return err
	}
	if rt.ended {
		fmt.Fprintln(globals.out(), "Stored session was invalid and has been cleared")
	}
	fmt.Fprintln(globals.out(), describe(rt.holder.Snapshot()))
	return nil
}

type SignupCmd struct {
	Username string `arg:"" help:"Account name"`
	Email    string `help:"Contact email" required:""`
	Password string `help:"Account password" required:"" env:"BIKEHUB_PASSWORD"`
	Phone    string `help:"Optional phone number"`
}

func (s *SignupCmd) Run(ctx context.Context, globals *Globals) error {
	rt, err := globals.open(ctx)
	if err != nil {
		return err
	}
	if !rt.holder.Signup(rt.ctx, strings.TrimSpace(s.Username), strings.TrimSpace(s.Email), s.Password, s.Phone) {
		return errors.New("registration failed")
	}
	fmt.Fprintln(globals.out(), "Account created; run `bikehub login` to start a session")
	return nil
}
