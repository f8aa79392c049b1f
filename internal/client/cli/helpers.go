package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/splitbill/pkg/api"
)

// parseID разбирает позиционный числовой аргумент команды
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %q", what, arg)
	}
	return id, nil
}

// parseIDList разбирает список id через запятую: "1,2,3"
func parseIDList(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := parseID(part, "user")
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("expected at least one id")
	}

	return ids, nil
}

// userRefName возвращает отображаемое имя для ссылки на пользователя.
// Сервер может прислать только id — тогда показываем его.
func userRefName(ref api.UserRef) string {
	if ref.User != nil && ref.User.Name != "" {
		return ref.User.Name
	}
	return fmt.Sprintf("user #%d", ref.ID)
}

// groupRefName возвращает отображаемое имя для ссылки на группу
func groupRefName(ref api.GroupRef) string {
	if ref.Group != nil && ref.Group.Name != "" {
		return ref.Group.Name
	}
	return fmt.Sprintf("group #%d", ref.ID)
}

// invitationGroupName возвращает имя группы приглашения
func invitationGroupName(inv api.Invitation) string {
	if inv.Group != nil && inv.Group.Name != "" {
		return inv.Group.Name
	}
	return fmt.Sprintf("group #%d", inv.GroupID)
}

// formatAmount форматирует денежную сумму
func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
