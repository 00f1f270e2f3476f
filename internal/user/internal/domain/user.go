package domain

const (
	RoleMember  = "member"
	RoleOfficer = "officer"
	RoleAdmin   = "admin"
)

type User struct {
	Id       int64
	SN       string
	Email    string
	Password string
	Avatar   string
	Nickname string
	// member/officer/admin,放进 session claims 里
	Role string
}
