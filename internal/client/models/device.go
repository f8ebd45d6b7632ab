package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format of Device.LastActiveDate.
const DateLayout = "2006-01-02"

// DeviceType classifies a device.
type DeviceType string

const (
	DeviceTypeLaptop  DeviceType = "Laptop"
	DeviceTypeDesktop DeviceType = "Desktop"
	DeviceTypePhone   DeviceType = "Phone"
	DeviceTypeTablet  DeviceType = "Tablet"
	DeviceTypeOther   DeviceType = "Other"
)

// DeviceTypes lists the accepted types in display order.
var DeviceTypes = []DeviceType{
	DeviceTypeLaptop,
	DeviceTypeDesktop,
	DeviceTypePhone,
	DeviceTypeTablet,
	DeviceTypeOther,
}

func (t DeviceType) Valid() bool {
	for _, v := range DeviceTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ParseDeviceType matches s against the known types, ignoring case.
func ParseDeviceType(s string) (DeviceType, error) {
	for _, v := range DeviceTypes {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown device type %q", s)
}

// Common status values. Status is free text; these are what the UI offers.
const (
	StatusActive      = "Active"
	StatusInactive    = "Inactive"
	StatusMaintenance = "Maintenance"
	StatusRetired     = "Retired"
)

var Statuses = []string{StatusActive, StatusInactive, StatusMaintenance, StatusRetired}

// Device is one inventory record. UserID is the owning account.
type Device struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Type           DeviceType `json:"type"`
	Status         string     `json:"status"`
	AssignedUser   string     `json:"assignedUser"`
	LastActiveDate string     `json:"lastActiveDate"`
	UserID         string     `json:"userId"`
}

// Fields returns the user-editable part of d.
func (d Device) Fields() DeviceFields {
	return DeviceFields{
		Name:           d.Name,
		Type:           d.Type,
		Status:         d.Status,
		AssignedUser:   d.AssignedUser,
		LastActiveDate: d.LastActiveDate,
	}
}

// DeviceFields is the user-supplied data of a device.
type DeviceFields struct {
	Name           string     `json:"name"`
	Type           DeviceType `json:"type"`
	Status         string     `json:"status"`
	AssignedUser   string     `json:"assignedUser"`
	LastActiveDate string     `json:"lastActiveDate"`
}

// Validate checks the fields a device form requires.
func (f DeviceFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("device name is required")
	}
	if !f.Type.Valid() {
		return fmt.Errorf("unknown device type %q", f.Type)
	}
	if strings.TrimSpace(f.Status) == "" {
		return fmt.Errorf("device status is required")
	}
	if _, err := time.Parse(DateLayout, f.LastActiveDate); err != nil {
		return fmt.Errorf("last active date must be YYYY-MM-DD")
	}
	return nil
}

// Patch converts f into a patch that sets every field.
func (f DeviceFields) Patch() DevicePatch {
	return DevicePatch{
		Name:           &f.Name,
		Type:           &f.Type,
		Status:         &f.Status,
		AssignedUser:   &f.AssignedUser,
		LastActiveDate: &f.LastActiveDate,
	}
}

// DevicePatch is a partial update. Nil fields are left as stored.
type DevicePatch struct {
	Name           *string     `json:"name,omitempty"`
	Type           *DeviceType `json:"type,omitempty"`
	Status         *string     `json:"status,omitempty"`
	AssignedUser   *string     `json:"assignedUser,omitempty"`
	LastActiveDate *string     `json:"lastActiveDate,omitempty"`
}

// Apply merges p into d. ID and UserID are never touched.
func (p DevicePatch) Apply(d *Device) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.AssignedUser != nil {
		d.AssignedUser = *p.AssignedUser
	}
	if p.LastActiveDate != nil {
		d.LastActiveDate = *p.LastActiveDate
	}
}
