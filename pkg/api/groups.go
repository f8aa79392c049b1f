package api

// Статусы приглашений в группу
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected"
)

// GroupMember представляет участника группы
type GroupMember struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

// Group представляет группу совместных расходов
type Group struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Members     []GroupMember `json:"members,omitempty"`
	CreatedAt   string        `json:"created_at,omitempty"` // RFC3339, как отдает сервер
}

// CreateGroupRequest представляет запрос на создание группы
type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateGroupRequest представляет частичное обновление группы.
// nil-поля не отправляются и остаются без изменений на сервере.
type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// InviteRequest представляет приглашение пользователя в группу по email
type InviteRequest struct {
	Email string `json:"email"`
}

// AddMemberRequest представляет прямое добавление участника по email
type AddMemberRequest struct {
	Email string `json:"email"`
}

// Invitation представляет приглашение текущего пользователя в группу.
// Поля Group и InvitedByUser сервер может не заполнять.
type Invitation struct {
	ID            int64  `json:"id"`
	GroupID       int64  `json:"group_id"`
	InvitedBy     int64  `json:"invited_by"`
	InvitedEmail  string `json:"invited_email"`
	Status        string `json:"status"` // pending | accepted | rejected
	CreatedAt     string `json:"created_at,omitempty"`
	Group         *Group `json:"group,omitempty"`
	InvitedByUser *User  `json:"invited_by_user,omitempty"`
}
