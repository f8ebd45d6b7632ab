package cli

import "context"

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email, a password and its confirmation, then
// creates the account and signs it in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.fd, "Enter password: ", a.out)
	if err != nil {
		return err
	}

	confirm, err := getPassword(a.reader, a.fd, "Confirm password: ", a.out)
	if err != nil {
		return err
	}

	return a.notify.Result(a.ctl.Register(ctx, email, password, confirm))
}

// Login prompts for credentials and signs the account in. The session
// survives restarts until Logout.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.fd, "Enter password: ", a.out)
	if err != nil {
		return err
	}

	return a.notify.Result(a.ctl.Login(ctx, email, password))
}

func (a *App) Logout(ctx context.Context) error {
	return a.notify.Result(a.ctl.Logout(ctx))
}

// WhoAmI prints the signed-in account.
func (a *App) WhoAmI(_ context.Context) error {
	acc := a.ctl.State().Account
	if acc == nil {
		a.notify.Info("Not signed in")
		return nil
	}
	a.notify.Info("Signed in as %s", acc.Email)
	return nil
}
