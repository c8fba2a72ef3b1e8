package basic

// UserMeta 请求身份信息, 由网关JWT解出; 空邮箱表示匿名请求
type UserMeta struct {
	Email string `json:"email"`
}

func (m *UserMeta) GetEmail() string {
	if m == nil {
		return ""
	}
	return m.Email
}
