package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobloom-api/internal/config"
)

const cookieName = "nb_session"

type ctxKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}

// Middleware garante que toda requisição carregue uma sessão. O cookie leva
// o ID selado com AES-GCM; cookie ausente ou adulterado gera sessão nova.
func Middleware(store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			sess := fromCookie(store, r)
			if sess == nil {
				sess = store.Create()
				value, err := config.Encrypt(sess.ID.String())
				if err != nil {
					log.WithError(err).Error("Falha ao selar o cookie de sessão")
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    value,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), sess)))
		})
	}
}

func fromCookie(store *Store, r *http.Request) *Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}
	plain, err := config.Decrypt(cookie.Value)
	if err != nil {
		return nil
	}
	id, err := uuid.Parse(plain)
	if err != nil {
		return nil
	}
	s, ok := store.Get(id)
	if !ok {
		return nil
	}
	return s
}
