package cli

import "regexp"

var credentialPattern = regexp.MustCompile(`(://[^/\s:@]+:)[^/\s@]+@`)

// MaskCredentials는 URL userinfo의 비밀번호를 마스킹한다.
// 사설 패키지 인덱스 URL(PIP_INDEX_URL 등)을 출력할 때 사용한다.
func MaskCredentials(s string) string {
	return credentialPattern.ReplaceAllString(s, "${1}****@")
}
