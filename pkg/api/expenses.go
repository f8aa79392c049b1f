package api

import (
	"encoding/json"
	"fmt"
)

// UserRef представляет ссылку на пользователя в ответе сервера.
// Сервер отдает либо голый id, либо вложенный объект User;
// обе формы нормализуются при декодировании. При кодировании
// всегда отправляется id (форму с объектом сервер не принимает).
type UserRef struct {
	User *User // nil, если сервер прислал только id
	ID   int64
}

// UnmarshalJSON принимает как число, так и объект
func (r *UserRef) UnmarshalJSON(data []byte) error {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.User = nil
		return nil
	}

	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return fmt.Errorf("user ref is neither id nor object: %w", err)
	}
	r.ID = u.ID
	r.User = &u
	return nil
}

// MarshalJSON всегда кодирует голый id
func (r UserRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// GroupRef представляет ссылку на группу, аналогично UserRef
type GroupRef struct {
	Group *Group // nil, если сервер прислал только id
	ID    int64
}

func (r *GroupRef) UnmarshalJSON(data []byte) error {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Group = nil
		return nil
	}

	var g Group
	if err := json.Unmarshal(data, &g); err != nil {
		return fmt.Errorf("group ref is neither id nor object: %w", err)
	}
	r.ID = g.ID
	r.Group = &g
	return nil
}

func (r GroupRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// Expense представляет расход, разделенный между участниками группы
type Expense struct {
	ID           int64     `json:"id"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	PaidBy       UserRef   `json:"paid_by"`
	Group        GroupRef  `json:"group"`
	SplitBetween []UserRef `json:"split_between"`
	CreatedAt    string    `json:"created_at,omitempty"`
}

// CreateExpenseRequest представляет запрос на создание расхода
type CreateExpenseRequest struct {
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	GroupID      int64   `json:"group_id"`
	SplitBetween []int64 `json:"split_between"`
}

// UpdateExpenseRequest представляет частичное обновление расхода
type UpdateExpenseRequest struct {
	Description  *string  `json:"description,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	SplitBetween []int64  `json:"split_between,omitempty"`
}
