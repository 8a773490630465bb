package server

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

const adminPasswordHeader = "X-Admin-Password"

// adminAuthMiddleware gates the admin routes behind the shared static
// password. The plaintext is hashed once here so request handling only
// ever sees the hash.
func adminAuthMiddleware(password string) func(http.Handler) http.Handler {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic("hashing admin password: " + err.Error())
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminPasswordHeader)
			if got == "" || bcrypt.CompareHashAndPassword(hash, []byte(got)) != nil {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
