package userprops

// UserRecord is one parsed identity entry. The password is stored as-is;
// whether it is a hash or a plain value is the caller's concern.
type UserRecord struct {
	Username string
	Password string
	Enabled  bool
	Roles    []string
}
