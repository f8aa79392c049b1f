package api

import (
	"context"
	"fmt"

	"github.com/iudanet/splitbill/pkg/api"
)

// ListGroups возвращает группы текущего пользователя
func (c *Client) ListGroups(ctx context.Context) ([]api.Group, error) {
	var resp []api.Group
	err := c.doRequest(ctx, "GET", "/groups", nil, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list groups request failed: %w", err)
	}
	return resp, nil
}

// GetGroup возвращает группу по id
func (c *Client) GetGroup(ctx context.Context, id int64) (*api.Group, error) {
	var resp api.Group
	err := c.doRequest(ctx, "GET", fmt.Sprintf("/groups/%d", id), nil, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get group request failed: %w", err)
	}
	return &resp, nil
}

// CreateGroup создает новую группу
func (c *Client) CreateGroup(ctx context.Context, req api.CreateGroupRequest) (*api.Group, error) {
	var resp api.Group
	err := c.doRequest(ctx, "POST", "/groups", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create group request failed: %w", err)
	}
	return &resp, nil
}

// UpdateGroup частично обновляет группу: nil-поля не трогаются
func (c *Client) UpdateGroup(ctx context.Context, id int64, req api.UpdateGroupRequest) (*api.Group, error) {
	var resp api.Group
	err := c.doRequest(ctx, "PUT", fmt.Sprintf("/groups/%d", id), nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update group request failed: %w", err)
	}
	return &resp, nil
}

// DeleteGroup удаляет группу
func (c *Client) DeleteGroup(ctx context.Context, id int64) error {
	err := c.doRequest(ctx, "DELETE", fmt.Sprintf("/groups/%d", id), nil, nil, nil)
	if err != nil {
		return fmt.Errorf("delete group request failed: %w", err)
	}
	return nil
}

// SendInvitation отправляет приглашение в группу по email
func (c *Client) SendInvitation(ctx context.Context, groupID int64, email string) error {
	req := api.InviteRequest{Email: email}
	err := c.doRequest(ctx, "POST", fmt.Sprintf("/groups/%d/invite", groupID), nil, req, nil)
	if err != nil {
		return fmt.Errorf("send invitation request failed: %w", err)
	}
	return nil
}

// AddMember добавляет участника в группу по email без приглашения
func (c *Client) AddMember(ctx context.Context, groupID int64, email string) (*api.Group, error) {
	req := api.AddMemberRequest{Email: email}
	var resp api.Group
	err := c.doRequest(ctx, "POST", fmt.Sprintf("/groups/%d/members", groupID), nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("add member request failed: %w", err)
	}
	return &resp, nil
}

// ListInvitations возвращает приглашения текущего пользователя
func (c *Client) ListInvitations(ctx context.Context) ([]api.Invitation, error) {
	var resp []api.Invitation
	err := c.doRequest(ctx, "GET", "/invitations", nil, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list invitations request failed: %w", err)
	}
	return resp, nil
}

// AcceptInvitation принимает приглашение
func (c *Client) AcceptInvitation(ctx context.Context, id int64) error {
	err := c.doRequest(ctx, "POST", fmt.Sprintf("/invitations/%d/accept", id), nil, nil, nil)
	if err != nil {
		return fmt.Errorf("accept invitation request failed: %w", err)
	}
	return nil
}

// RejectInvitation отклоняет приглашение
func (c *Client) RejectInvitation(ctx context.Context, id int64) error {
	err := c.doRequest(ctx, "POST", fmt.Sprintf("/invitations/%d/reject", id), nil, nil, nil)
	if err != nil {
		return fmt.Errorf("reject invitation request failed: %w", err)
	}
	return nil
}
