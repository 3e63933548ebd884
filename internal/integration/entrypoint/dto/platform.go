package dto

import "github.com/finance-tracker/client/internal/domain/entity"

// CreatePlatformRequest represents the request body for platform creation.
type CreatePlatformRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	PlatformType string  `json:"platform_type" binding:"required,oneof=bank digital_wallet investment crypto"`
	LogoURL      *string `json:"logo_url,omitempty"`
	APIEndpoint  *string `json:"api_endpoint,omitempty"`
}

// PlatformResponse represents a single platform in API responses.
type PlatformResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	PlatformType string  `json:"platform_type"`
	LogoURL      *string `json:"logo_url"`
	APIEndpoint  *string `json:"api_endpoint"`
	IsActive     bool    `json:"is_active"`
}

// ToCreatePlatformRequest converts a draft to its request body.
func ToCreatePlatformRequest(draft entity.PlatformDraft) CreatePlatformRequest {
	req := CreatePlatformRequest{
		Name:         draft.Name,
		PlatformType: string(draft.Type),
	}
	if draft.LogoURL != "" {
		logo := draft.LogoURL
		req.LogoURL = &logo
	}
	return req
}

// ToEntity converts the response to a domain Platform.
func (r PlatformResponse) ToEntity() entity.Platform {
	platform := entity.Platform{
		ID:     r.ID,
		Name:   r.Name,
		Type:   entity.PlatformType(r.PlatformType),
		Active: r.IsActive,
	}
	if r.LogoURL != nil {
		platform.LogoURL = *r.LogoURL
	}
	return platform
}

// ToPlatformResponse converts a domain Platform to its response.
func ToPlatformResponse(p entity.Platform) PlatformResponse {
	response := PlatformResponse{
		ID:           p.ID,
		Name:         p.Name,
		PlatformType: string(p.Type),
		IsActive:     p.Active,
	}
	if p.LogoURL != "" {
		logo := p.LogoURL
		response.LogoURL = &logo
	}
	return response
}
