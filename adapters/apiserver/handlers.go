package apiserver

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/hcml/assetconsole/core"
	"github.com/hcml/assetconsole/pkg/crypto"
)

// login hands back the sealed redirect target that starts an SSO login,
// as plain text. Any lingering session cookie is cleared first.
func (s *Server) login(c fiber.Ctx) error {
	sealed, err := s.sealer.Seal(s.target)
	if err != nil {
		s.log.Error("failed to seal login target", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "authentication failed",
		})
	}

	s.expireSessionCookie(c)
	return c.SendString(sealed)
}

// callback stands in for the SSO return leg: it issues the session
// cookie the console carries afterwards. Only the token hash stays
// server-side.
func (s *Server) callback(c fiber.Ctx) error {
	pair, err := crypto.GenerateHashedToken()
	if err != nil {
		s.log.Error("failed to issue session token", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "authentication failed",
		})
	}

	s.mu.Lock()
	s.sessions[pair.Hash] = struct{}{}
	s.mu.Unlock()

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    pair.Token,
		Path:     "/",
		HTTPOnly: true,
	})
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "session established",
	})
}

func (s *Server) logout(c fiber.Ctx) error {
	if token := c.Cookies(sessionCookie); token != "" {
		s.mu.Lock()
		delete(s.sessions, crypto.HashToken(token))
		s.mu.Unlock()
	}
	s.expireSessionCookie(c)
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "logged out",
	})
}

// HasSession reports whether token belongs to a live session.
func (s *Server) HasSession(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for hash := range s.sessions {
		ok, err := crypto.VerifyToken(token, hash)
		if err == nil && ok {
			return true
		}
	}
	return false
}

func (s *Server) expireSessionCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}

func (s *Server) createAsset(c fiber.Ctx) error {
	var values core.AssetFormValues
	if err := c.Bind().Body(&values); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if msg := validateAssetValues(values); msg != "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	asset := assetFromValues(uuid.NewString(), values)
	asset.Version = 1
	asset.IsLatest = true

	if err := s.storage.CreateAsset(asset); err != nil {
		s.log.Error("failed to create asset", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create asset",
		})
	}
	return c.Status(http.StatusCreated).JSON(asset)
}

func (s *Server) listAssets(c fiber.Ctx) error {
	assets, err := s.storage.ListAssets()
	if err != nil {
		s.log.Error("failed to list assets", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch assets",
		})
	}
	if assets == nil {
		assets = []*core.Asset{}
	}
	return c.Status(http.StatusOK).JSON(assets)
}

func (s *Server) getAsset(c fiber.Ctx) error {
	asset, err := s.storage.GetAsset(c.Params("id"))
	if err != nil {
		if err == ErrAssetNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "asset not found",
			})
		}
		s.log.Error("failed to load asset", "id", c.Params("id"), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch asset",
		})
	}
	return c.Status(http.StatusOK).JSON(asset)
}

func (s *Server) updateAsset(c fiber.Ctx) error {
	id := c.Params("id")

	var values core.AssetFormValues
	if err := c.Bind().Body(&values); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if msg := validateAssetValues(values); msg != "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	existing, err := s.storage.GetAsset(id)
	if err != nil {
		if err == ErrAssetNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "asset not found",
			})
		}
		s.log.Error("failed to load asset", "id", id, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update asset",
		})
	}

	updated := assetFromValues(id, values)
	updated.Version = existing.Version + 1
	updated.IsLatest = true

	if err := s.storage.UpdateAsset(updated); err != nil {
		s.log.Error("failed to update asset", "id", id, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update asset",
		})
	}
	return c.Status(http.StatusOK).JSON(updated)
}

// allowed inspection statuses, matching the console's condition options
var auditStatuses = map[string]bool{
	"OK":      true,
	"DAMAGED": true,
	"MISSING": true,
	"REPAIR":  true,
}

func (s *Server) createAudit(c fiber.Ctx) error {
	var draft core.InspectionDraft
	if err := c.Bind().Body(&draft); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if draft.AssetID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "assetId is required",
		})
	}
	if draft.Status == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}
	if !auditStatuses[draft.Status] {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid condition",
		})
	}

	id, err := crypto.NanoID()
	if err != nil {
		s.log.Error("failed to generate audit id", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create asset audit",
		})
	}

	record := &core.AuditRecord{
		ID:          id,
		AssetID:     draft.AssetID,
		CheckedByID: draft.CheckedByID,
		CheckDate:   draft.CheckDate,
		LocationID:  draft.LocationID,
		Status:      draft.Status,
		Remarks:     draft.Remarks,
		CreatedAt:   time.Now(),
	}
	if err := s.storage.CreateAudit(record); err != nil {
		s.log.Error("failed to store audit", "assetId", draft.AssetID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create asset audit",
		})
	}
	return c.Status(http.StatusCreated).JSON(record)
}

func (s *Server) listAudits(c fiber.Ctx) error {
	records, err := s.storage.ListAudits(c.Query("assetId"), c.Query("status"))
	if err != nil {
		s.log.Error("failed to list audits", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch audit records",
		})
	}
	if records == nil {
		records = []*core.AuditRecord{}
	}
	return c.Status(http.StatusOK).JSON(records)
}

func validateAssetValues(v core.AssetFormValues) string {
	switch {
	case v.AssetNo == "":
		return "assetNo is required"
	case v.AssetName == "":
		return "assetName is required"
	default:
		return ""
	}
}

func assetFromValues(id string, v core.AssetFormValues) *core.Asset {
	return &core.Asset{
		ID:            id,
		AssetNo:       v.AssetNo,
		LineNo:        v.LineNo,
		AssetName:     v.AssetName,
		Condition:     v.Condition,
		CategoryCode:  v.CategoryCode,
		ProjectCode:   v.ProjectCode,
		LocationDesc:  v.LocationDesc,
		AcqValue:      v.AcqValue,
		AcqValueIDR:   v.AcqValueIDR,
		BookValue:     v.BookValue,
		AccumDepre:    v.AccumDepre,
		AdjustedDepre: v.AdjustedDepre,
		YTDDepre:      v.YTDDepre,
		PISDate:       v.PISDate,
		TransDate:     v.TransDate,
		Images:        v.Images,
	}
}
