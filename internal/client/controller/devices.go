package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/dmitrijs2005/devprofiler/internal/common"
)

var notSignedIn = Result{Kind: KindState, Message: MsgNotSignedIn}

// DeviceCountLabel renders the dashboard counter, e.g. "1 device registered".
func DeviceCountLabel(n int) string {
	if n == 1 {
		return "1 device registered"
	}
	return fmt.Sprintf("%d devices registered", n)
}

// Devices lists the signed-in account's devices in insertion order.
func (c *Controller) Devices(ctx context.Context) ([]models.Device, Result) {
	if !c.Authenticated() {
		return nil, notSignedIn
	}

	list, err := c.devices.ListForAccount(ctx, c.state.Account.ID)
	if err != nil {
		return nil, c.fail(ctx, "list devices", err)
	}
	return list, ok(DeviceCountLabel(len(list)))
}

// BeginAdd drops any staged edit and returns a pre-filled form: a Laptop,
// Active, last seen today.
func (c *Controller) BeginAdd() models.DeviceFields {
	c.state.EditingID = ""
	return models.DeviceFields{
		Type:           models.DeviceTypeLaptop,
		Status:         models.StatusActive,
		LastActiveDate: today().Format(models.DateLayout),
	}
}

// BeginEdit stages id for editing and returns the stored device so the form
// can be pre-filled.
func (c *Controller) BeginEdit(ctx context.Context, id string) (*models.Device, Result) {
	d, r := c.ownedDevice(ctx, id)
	if !r.OK() {
		return nil, r
	}
	c.state.EditingID = id
	return d, ok("")
}

func (c *Controller) CancelEdit() {
	c.state.EditingID = ""
}

// SubmitDevice saves the form. With an editing id (given, or staged by
// BeginEdit) the device is updated, otherwise a new one is added for the
// signed-in account. Updating an id that does not exist, or that belongs to
// another account, changes nothing. A validation failure keeps the staged
// edit so the form can be corrected.
func (c *Controller) SubmitDevice(ctx context.Context, f models.DeviceFields, editingID string) Result {
	if !c.Authenticated() {
		return notSignedIn
	}

	if err := f.Validate(); err != nil {
		return Result{Kind: KindValidation, Message: sentence(err.Error())}
	}

	id := editingID
	if id == "" {
		id = c.state.EditingID
	}
	defer c.CancelEdit()

	if id != "" {
		if err := c.devices.UpdateOwned(ctx, c.state.Account.ID, id, f.Patch()); err != nil {
			return c.fail(ctx, "update device", err)
		}
		return ok(MsgDeviceUpdated)
	}

	if _, err := c.devices.Add(ctx, c.state.Account.ID, f); err != nil {
		return c.fail(ctx, "add device", err)
	}
	return ok(MsgDeviceAdded)
}

// RequestDelete stages id for deletion. Nothing is removed until
// ConfirmDelete.
func (c *Controller) RequestDelete(ctx context.Context, id string) (*models.Device, Result) {
	d, r := c.ownedDevice(ctx, id)
	if !r.OK() {
		return nil, r
	}
	c.state.PendingDeleteID = id
	return d, ok(fmt.Sprintf("Are you sure you want to delete %s?", d.Name))
}

// ConfirmDelete removes the staged device. Without a staged id it does
// nothing.
func (c *Controller) ConfirmDelete(ctx context.Context) Result {
	if !c.Authenticated() {
		return notSignedIn
	}

	id := c.state.PendingDeleteID
	if id == "" {
		return Result{Kind: KindState, Message: MsgNothingToDelete}
	}
	defer c.CancelDelete()

	if err := c.devices.RemoveOwned(ctx, c.state.Account.ID, id); err != nil {
		return c.fail(ctx, "delete device", err)
	}
	return ok(MsgDeviceDeleted)
}

func (c *Controller) CancelDelete() {
	c.state.PendingDeleteID = ""
}

// ownedDevice loads id and checks it belongs to the signed-in account.
// A foreign device is reported exactly like a missing one.
func (c *Controller) ownedDevice(ctx context.Context, id string) (*models.Device, Result) {
	if !c.Authenticated() {
		return nil, notSignedIn
	}

	d, err := c.devices.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, Result{Kind: KindNotFound, Message: MsgDeviceNotFound}
		}
		return nil, c.fail(ctx, "get device", err)
	}

	if d.UserID != c.state.Account.ID {
		c.log.Warn(ctx, "access to foreign device refused", "device_id", id, "account_id", c.state.Account.ID)
		return nil, Result{Kind: KindNotFound, Message: MsgDeviceNotFound}
	}
	return d, ok("")
}
