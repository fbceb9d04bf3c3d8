package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

const (
	msgLoggedIn       = "تم تسجيل الدخول بنجاح"
	msgLoggedOut      = "تم تسجيل الخروج"
	msgSessionExpired = "(منتهية الصلاحية)"
)

func (c *CLI) runHealth(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("health")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	health := c.api.HealthCheck(ctx)
	if opts.structured() {
		if err := c.writeStructured(*opts, health); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(c.out, "%s: %s\n", health.Status, health.Message)
	}

	if !health.Healthy() {
		return errFailed
	}
	return nil
}

func (c *CLI) runRegister(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("register")
	var form registerForm
	fs.StringVar(&form.FullName, "name", "", "full name")
	fs.StringVar(&form.Username, "username", "", "username")
	fs.StringVar(&form.Email, "email", "", "email address")
	fs.StringVar(&form.Password, "password", "", "password (at least 6 characters)")
	fs.StringVar(&form.Confirm, "confirm", "", "password confirmation")
	fs.StringVar(&form.Role, "role", string(campussdk.RoleStudent), "student or employee")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkForm(form); err != nil {
		return err
	}

	res := c.api.Register(ctx, campussdk.RegisterRequest{
		FullName: form.FullName,
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Role:     campussdk.Role(form.Role),
	})
	return c.renderAction(*opts, res, res.Envelope, "")
}

func (c *CLI) runLogin(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("login")
	var form loginForm
	fs.StringVar(&form.Username, "username", "", "username")
	fs.StringVar(&form.Password, "password", "", "password")
	fs.StringVar(&form.Role, "role", string(campussdk.RoleStudent), "student or employee")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkForm(form); err != nil {
		return err
	}

	res := c.api.Login(ctx, campussdk.Credentials{
		Username: form.Username,
		Password: form.Password,
		Role:     campussdk.Role(form.Role),
	})

	if opts.structured() {
		// The token stays in the session store.
		res.Token = ""
		if err := c.writeStructured(*opts, res); err != nil {
			return err
		}
		return envelopeErr(res.Envelope)
	}

	if !res.Success {
		c.notify(res.Envelope)
		return errFailed
	}
	fmt.Fprintln(c.out, msgLoggedIn)
	if res.User != nil {
		fmt.Fprintf(c.out, "%s (%s)\n", res.User.FullName, res.User.Role)
	}
	return nil
}

func (c *CLI) runLogout(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("logout")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	res := c.api.Logout(ctx)
	return c.renderAction(*opts, res, res.Envelope, msgLoggedOut)
}

func (c *CLI) runWhoami(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("whoami")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	session, err := c.api.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if !session.Authenticated() {
		fmt.Fprintln(c.errOut, errNotSignedIn)
		return errFailed
	}

	user := session.User
	expired := session.Expired(time.Now())

	if opts.structured() {
		return c.writeStructured(*opts, whoamiView{
			UserProfile: *user,
			ExpiresAt:   session.ExpiresAt,
			Expired:     expired,
		})
	}
	return c.renderFields([][2]string{
		{"name", user.FullName},
		{"username", orDash(user.Username)},
		{"email", orDash(user.Email)},
		{"role", string(user.Role)},
		{"expires", formatExpiry(session.ExpiresAt, expired)},
	})
}

type whoamiView struct {
	campussdk.UserProfile
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
	Expired   bool      `json:"expired"`
}

func formatExpiry(at time.Time, expired bool) string {
	if at.IsZero() {
		return "-"
	}
	s := at.Local().Format(dateLayout)
	if expired {
		s += " " + msgSessionExpired
	}
	return s
}
