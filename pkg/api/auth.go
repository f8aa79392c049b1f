package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Name     string `json:"name"`     // отображаемое имя
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	TokenType   string `json:"token_type"`   // обычно "bearer"
}

// User представляет пользователя сервиса
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
	Detail  string `json:"detail,omitempty"`  // detail в стиле FastAPI
}
