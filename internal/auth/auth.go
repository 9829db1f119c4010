package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"Pavement/internal/log"
	"Pavement/internal/repo"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	userLoginKey contextKey = "userLogin"

	CookieName = "session_token"
	sessionTTL = 30 * 24 * time.Hour
)

type Authenv struct {
	JWTkey []byte
	Repo   repo.Repository
}

type Loginrequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type Registerrequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// UserID returns the authenticated user's id stored by AuthMiddleware.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

func UserLogin(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(userLoginKey).(string)
	return login, ok
}

func (env *Authenv) IssueToken(userID int, login string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"login":   login,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	})
	return token.SignedString(env.JWTkey)
}

// ParseToken validates the signature and expiry and extracts the session claims.
func (env *Authenv) ParseToken(tokenString string) (int, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return env.JWTkey, nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	login, ok := claims["login"].(string)
	if !ok || login == "" {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	return int(userID), login, nil
}

func (env *Authenv) RedirectIfLoggedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err == nil {
			if _, _, err := env.ParseToken(cookie.Value); err == nil {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware rejects requests without a valid session with 401 and
// stores the user's id and login in the request context.
func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		userID, login, err := env.ParseToken(cookie.Value)
		if err != nil {
			log.Debugw("session rejected", "error", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userLoginKey, login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (env *Authenv) addCookie(w http.ResponseWriter, userID int, login string) error {
	tokenString, err := env.IssueToken(userID, login)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Expires:  time.Now().Add(sessionTTL),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (env *Authenv) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req Registerrequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	req.Email = strings.TrimSpace(req.Email)
	if req.Login == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Login, email and password required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 {
		http.Error(w, "Password too short", http.StatusBadRequest)
		return
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}
	id, err := env.Repo.CreateUser(r.Context(), req.Login, req.Email, hashedPassword)
	if err != nil {
		log.Warnw("create user failed", "login", req.Login, "error", err)
		http.Error(w, "User already exists or DB error", http.StatusConflict)
		return
	}

	if err := env.addCookie(w, id, req.Login); err != nil {
		log.Errorw("issue session token failed", "error", err)
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte("Registration successful"))
}

func (env *Authenv) AuthHandler(w http.ResponseWriter, r *http.Request) {
	var req Loginrequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" || req.Password == "" {
		http.Error(w, "Login and password required", http.StatusBadRequest)
		return
	}

	id, storedHash, err := env.Repo.GetByLogin(r.Context(), req.Login)
	if errors.Is(err, repo.ErrUserNotFound) {
		http.Error(w, "Invalid login or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Errorw("lookup user failed", "login", req.Login, "error", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid login or password", http.StatusUnauthorized)
		return
	}
	if err := env.addCookie(w, id, req.Login); err != nil {
		log.Errorw("issue session token failed", "error", err)
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Authentication successful"))
}

func (env *Authenv) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
