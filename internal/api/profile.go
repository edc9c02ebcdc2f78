package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"pracd-client/internal/model"
)

// Profile fetches the authenticated view of an account.
func (c *Client) Profile(ctx context.Context, id string) (*model.Profile, error) {
	var p model.Profile
	if err := c.get(ctx, "/api/profile/"+url.PathEscape(id), bearer, &p, "failed to load profile"); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProfileUpdate carries only the fields a user may edit. Doctor-only fields
// are ignored by the backend for patient accounts.
type ProfileUpdate struct {
	Username  string `json:"username,omitempty"`
	UserEmail string `json:"useremail,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Age       int    `json:"age,omitempty"`

	Specialization string  `json:"specialization,omitempty"`
	Bio            string  `json:"doctor_description,omitempty"`
	Fees           float64 `json:"fees,omitempty"`
	Experience     int     `json:"experience,omitempty"`
	Image          string  `json:"profileImage,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) error {
	return c.put(ctx, "/api/profile/"+url.PathEscape(id), bearer, upd, nil, "failed to update profile")
}

// PublicDoctor fetches a doctor's public profile; no session required.
// The record may arrive bare or wrapped under "doctor" or "data".
func (c *Client) PublicDoctor(ctx context.Context, id string) (*model.Profile, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/profile/doctor/"+url.PathEscape(id), public, &raw, "failed to load doctor profile"); err != nil {
		return nil, err
	}

	var envelope struct {
		Doctor *model.Profile `json:"doctor"`
		Data   *model.Profile `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Doctor != nil {
			return envelope.Doctor, nil
		}
		if envelope.Data != nil {
			return envelope.Data, nil
		}
	}
	var p model.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse doctor profile: %w", err)
	}
	return &p, nil
}

// Doctors lists every doctor; public.
func (c *Client) Doctors(ctx context.Context) ([]model.Profile, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/profile/all/doctors", public, &raw, "failed to fetch doctors"); err != nil {
		return nil, err
	}
	return decodeList[model.Profile](raw, "data", "doctors", "results", "items"), nil
}

// Profiles lists accounts for moderation; admin only. An empty status
// returns everything, otherwise the backend filters by ?status=.
func (c *Client) Profiles(ctx context.Context, status model.AccountStatus) ([]model.Profile, error) {
	path := "/api/profile"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}
	var raw json.RawMessage
	if err := c.get(ctx, path, bearer, &raw, "failed to load profiles"); err != nil {
		return nil, err
	}
	return decodeList[model.Profile](raw, "users", "profiles", "results"), nil
}

// SetProfileStatus issues the account moderation command.
func (c *Client) SetProfileStatus(ctx context.Context, id string, status model.AccountStatus) error {
	body := struct {
		Status model.AccountStatus `json:"status"`
	}{status}
	return c.put(ctx, "/api/profile/status/"+url.PathEscape(id), bearer, body, nil, "failed to update user status")
}
