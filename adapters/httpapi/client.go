// Package httpapi is the HTTP adapter for the console's remote boundary.
// It implements the core AssetAPI, AuditAPI and AuthAPI ports against the
// JSON API served by adapters/apiserver (or the production equivalent).
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v3/client"

	"github.com/hcml/assetconsole/core"
)

// Client talks to the console API over HTTP.
type Client struct {
	cc  *client.Client
	log *slog.Logger
}

var (
	_ core.AssetAPI = (*Client)(nil)
	_ core.AuditAPI = (*Client)(nil)
	_ core.AuthAPI  = (*Client)(nil)
)

// New builds a Client rooted at baseURL, e.g. "http://localhost:3000/api".
func New(baseURL string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	cc := client.New()
	cc.SetBaseURL(baseURL)
	return &Client{cc: cc, log: log}
}

// netErr wraps a transport failure as a network-kind error, logged once
// here since callers surface only the message.
func (c *Client) netErr(msg string, err error) error {
	c.log.Warn("api request failed", "op", msg, "error", err)
	return core.NewError(core.KindNetwork, msg, err)
}

func (c *Client) CreateAsset(values core.AssetFormValues) (*core.Asset, error) {
	resp, err := c.cc.Post("/assets", client.Config{Body: values})
	if err != nil {
		return nil, c.netErr("failed to create asset", err)
	}
	defer resp.Close()

	var asset core.Asset
	if err := decodeResponse(resp, http.StatusCreated, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *Client) UpdateAsset(id string, values core.AssetFormValues) (*core.Asset, error) {
	resp, err := c.cc.Put("/assets/"+id, client.Config{Body: values})
	if err != nil {
		return nil, c.netErr("failed to update asset", err)
	}
	defer resp.Close()

	var asset core.Asset
	if err := decodeResponse(resp, http.StatusOK, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// ListAssets fetches the full asset table, outside the write-side port:
// list views call it directly.
func (c *Client) ListAssets() ([]*core.Asset, error) {
	resp, err := c.cc.Get("/assets")
	if err != nil {
		return nil, c.netErr("failed to fetch assets", err)
	}
	defer resp.Close()

	var assets []*core.Asset
	if err := decodeResponse(resp, http.StatusOK, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (c *Client) GetAsset(id string) (*core.Asset, error) {
	resp, err := c.cc.Get("/assets/" + id)
	if err != nil {
		return nil, c.netErr("failed to fetch asset", err)
	}
	defer resp.Close()

	var asset core.Asset
	if err := decodeResponse(resp, http.StatusOK, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *Client) CreateAudit(draft core.InspectionDraft) (*core.AuditRecord, error) {
	resp, err := c.cc.Post("/asset-audit", client.Config{Body: draft})
	if err != nil {
		return nil, c.netErr("failed to create asset audit", err)
	}
	defer resp.Close()

	var record core.AuditRecord
	if err := decodeResponse(resp, http.StatusCreated, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) ListAudits(assetID string) ([]*core.AuditRecord, error) {
	resp, err := c.cc.Get("/asset-audit", client.Config{
		Param: map[string]string{"assetId": assetID},
	})
	if err != nil {
		return nil, c.netErr("failed to fetch audit records", err)
	}
	defer resp.Close()

	var records []*core.AuditRecord
	if err := decodeResponse(resp, http.StatusOK, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) LoginURL() (string, error) {
	resp, err := c.cc.Get("/auth/login")
	if err != nil {
		return "", c.netErr("failed to start login", err)
	}
	defer resp.Close()

	if resp.StatusCode() != http.StatusOK {
		return "", rejection(resp)
	}
	return resp.String(), nil
}

func (c *Client) Logout() error {
	resp, err := c.cc.Get("/auth/logout")
	if err != nil {
		return c.netErr("failed to log out", err)
	}
	defer resp.Close()

	if resp.StatusCode() != http.StatusOK {
		return rejection(resp)
	}
	return nil
}

// decodeResponse checks the status and unmarshals the body into out. A
// status other than want is turned into a server-rejection error carrying
// the API's own message.
func decodeResponse(resp *client.Response, want int, out any) error {
	if resp.StatusCode() != want {
		return rejection(resp)
	}
	if err := resp.JSON(out); err != nil {
		return core.NewError(core.KindServerRejection, "malformed API response", err)
	}
	return nil
}

// rejection extracts the message the API puts in its {"error": ...}
// payload. Bodies without one fall back to "Unknown error".
func rejection(resp *client.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	msg := "Unknown error"
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return core.NewError(core.KindServerRejection, msg, nil)
}
