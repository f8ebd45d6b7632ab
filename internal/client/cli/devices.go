package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
)

// List prints the signed-in account's devices as a table followed by the
// device counter.
func (a *App) List(ctx context.Context) error {
	list, r := a.ctl.Devices(ctx)
	if !r.OK() {
		return a.notify.Result(r)
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, `No devices yet. Use "add" to register one.`)
	} else if err := renderDevices(a.out, list); err != nil {
		return err
	}

	a.notify.Info("%s", r.Message)
	return nil
}

// Add stages a new device form. Fields set in p are used as given; with an
// empty p the user fills the form interactively, starting from the defaults.
func (a *App) Add(ctx context.Context, p models.DevicePatch) error {
	f := a.ctl.BeginAdd()
	if err := a.fillForm(&f, p); err != nil {
		return err
	}
	return a.notify.Result(a.ctl.SubmitDevice(ctx, f, ""))
}

// Edit loads device id into the form and saves the changes.
func (a *App) Edit(ctx context.Context, id string, p models.DevicePatch) error {
	d, r := a.ctl.BeginEdit(ctx, id)
	if !r.OK() {
		return a.notify.Result(r)
	}

	f := d.Fields()
	if err := a.fillForm(&f, p); err != nil {
		a.ctl.CancelEdit()
		return err
	}
	return a.notify.Result(a.ctl.SubmitDevice(ctx, f, ""))
}

// Delete asks for confirmation, unless yes is set, and removes device id.
func (a *App) Delete(ctx context.Context, id string, yes bool) error {
	_, r := a.ctl.RequestDelete(ctx, id)
	if !r.OK() {
		return a.notify.Result(r)
	}

	if !yes {
		confirmed, err := Confirm(a.reader, r.Message, a.out)
		if err != nil {
			a.ctl.CancelDelete()
			return err
		}
		if !confirmed {
			a.ctl.CancelDelete()
			a.notify.Info("Deletion cancelled")
			return nil
		}
	}

	return a.notify.Result(a.ctl.ConfirmDelete(ctx))
}

func (a *App) fillForm(f *models.DeviceFields, p models.DevicePatch) error {
	if !patchEmpty(p) {
		var d models.Device
		f.Patch().Apply(&d)
		p.Apply(&d)
		*f = d.Fields()
		return nil
	}
	return a.promptForm(f)
}

// promptForm asks for every field, offering the current value as default.
func (a *App) promptForm(f *models.DeviceFields) error {
	name, err := GetTextWithDefault(a.reader, "Device name", f.Name, a.out)
	if err != nil {
		return err
	}

	typ, err := GetTextWithDefault(a.reader, "Type ("+joinTypes()+")", string(f.Type), a.out)
	if err != nil {
		return err
	}

	status, err := GetTextWithDefault(a.reader, "Status ("+strings.Join(models.Statuses, ", ")+")", f.Status, a.out)
	if err != nil {
		return err
	}

	assigned, err := GetTextWithDefault(a.reader, "Assigned user", f.AssignedUser, a.out)
	if err != nil {
		return err
	}

	date, err := GetTextWithDefault(a.reader, "Last active date (YYYY-MM-DD)", f.LastActiveDate, a.out)
	if err != nil {
		return err
	}

	f.Name = name
	f.Type = models.DeviceType(typ)
	if t, err := models.ParseDeviceType(typ); err == nil {
		f.Type = t
	}
	f.Status = status
	f.AssignedUser = assigned
	f.LastActiveDate = date
	return nil
}

func renderDevices(out io.Writer, list []models.Device) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tASSIGNED TO\tLAST ACTIVE")
	fmt.Fprintln(w, "--\t----\t----\t------\t-----------\t-----------")
	for _, d := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.Name, d.Type, d.Status, orDash(d.AssignedUser), displayDate(d.LastActiveDate))
	}
	return w.Flush()
}

// displayDate renders a stored YYYY-MM-DD date as "Jan 2, 2006".
func displayDate(s string) string {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return orDash(s)
	}
	return t.Format("Jan 2, 2006")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinTypes() string {
	names := make([]string, len(models.DeviceTypes))
	for i, t := range models.DeviceTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func patchEmpty(p models.DevicePatch) bool {
	return p.Name == nil && p.Type == nil && p.Status == nil && p.AssignedUser == nil && p.LastActiveDate == nil
}
