package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStudentID 无法从输入中提取纯数字学号
var ErrInvalidStudentID = errors.New("invalid student id")

// ExtractStudentID 从邮箱地址中提取学号
// 去掉 '@' 及其后内容，再去掉大小写不敏感的单个 'S' 前缀，
// 剩余部分必须全为数字。
// 例: S4186054@rmit.edu.vn -> 4186054
func ExtractStudentID(email string) (string, error) {
	prefix := strings.TrimSpace(strings.SplitN(email, "@", 2)[0])
	if prefix == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidStudentID, email)
	}

	if prefix[0] == 'S' || prefix[0] == 's' {
		prefix = prefix[1:]
	}

	if prefix == "" || !isDigits(prefix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStudentID, email)
	}

	return prefix, nil
}

// CanonicalStudentID 把学号规整为不带前导零的纯数字串
// 点名册里的学号常被电子表格当作数值渲染成 "4186054.0"，
// 比对前两侧都要走这里。无法规整时返回空串。
func CanonicalStudentID(cell string) string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return ""
	}

	// 去掉 ".0" 式的小数尾巴
	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac := s[i+1:]
		if frac != "" && strings.Trim(frac, "0") != "" {
			return ""
		}
		s = s[:i]
	}

	if s == "" || !isDigits(s) {
		return ""
	}

	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
