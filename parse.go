package userprops

import "strings"

type userAttribute struct {
	password string
	enabled  bool
	roles    []string
}

// parseAttribute converts the value side of one property line:
//   password[,enabled|disabled][,role]...
// Fields are comma-separated with no escaping of embedded commas; each field
// is trimmed. Both status tokens are case-sensitive. A disabled token is
// sticky: a later enabled token does not re-enable the user.
func parseAttribute(raw string) (userAttribute, error) {
	if strings.TrimSpace(raw) == "" {
		return userAttribute{}, errEmptyValue
	}
	attr := userAttribute{enabled: true}
	for i, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if i == 0 {
			attr.password = field
			continue
		}
		switch field {
		case "enabled":
			// The default; accepted as a no-op.
		case "disabled":
			attr.enabled = false
		case "":
			return userAttribute{}, errBlankRole
		default:
			attr.roles = append(attr.roles, field)
		}
	}
	return attr, nil
}
