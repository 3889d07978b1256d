package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/ports"
)

func (c *Client) ListTeam(ctx context.Context) ([]domain.TeamMember, error) {
	const op = "list team"
	raw, err := c.do(ctx, request{method: http.MethodGet, op: op, path: "/team/all"})
	if err != nil {
		return nil, err
	}
	return normalizeTeam(op, raw)
}

func (c *Client) AddMember(ctx context.Context, req ports.TeamMemberRequest) (*domain.TeamMember, error) {
	const op = "add team member"
	raw, err := c.do(ctx, request{body: req, method: http.MethodPost, op: op, path: "/team/add"})
	if err != nil {
		return nil, err
	}
	return normalizeMember(op, raw)
}

func (c *Client) UpdateMember(ctx context.Context, id string, req ports.TeamMemberRequest) (*domain.TeamMember, error) {
	const op = "update team member"
	raw, err := c.do(ctx, request{body: req, method: http.MethodPut, op: op, path: "/team/update/" + url.PathEscape(id)})
	if err != nil {
		return nil, err
	}
	return normalizeMember(op, raw)
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{method: http.MethodDelete, op: "delete team member", path: "/team/delete/" + url.PathEscape(id)})
	return err
}
