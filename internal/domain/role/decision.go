// Package role decides how guild roles track holidays: whether a role is
// created or reused, what it is named, and which members receive it.
package role

import (
	"fmt"
	"strings"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

// Name builds the managed role name for a holiday: "<Name> MM-DD". The name
// prefix is the correlation key used to find last year's role.
func Name(holidayName, date string) string {
	return fmt.Sprintf("%s %s", holidayName, date)
}

// Decide returns whether an existing role should be reused for the holiday
// or a new one created. Any role whose name starts with the holiday name
// (case-insensitive) is considered the same role, even if its trailing date
// is from a prior year; reusing it prevents accumulating one role per year.
func Decide(holidayName, date string, existingRoleNames []string) (entity.RoleAction, string) {
	target := Name(holidayName, date)
	prefix := strings.ToLower(holidayName)
	for _, existing := range existingRoleNames {
		if strings.HasPrefix(strings.ToLower(existing), prefix) {
			return entity.RoleActionUpdate, target
		}
	}
	return entity.RoleActionCreate, target
}

// Assignees filters out opted-out members before a role assignment. Removal
// when a holiday ends never consults the opt-out set; it applies to every
// current holder.
func Assignees(memberIDs []string, optOuts map[string]struct{}) []string {
	if len(optOuts) == 0 {
		return memberIDs
	}
	assignees := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		if _, excluded := optOuts[id]; !excluded {
			assignees = append(assignees, id)
		}
	}
	return assignees
}
