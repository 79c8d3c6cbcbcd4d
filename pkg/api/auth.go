package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль (plaintext, хешируется на сервере)
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest представляет запрос на обновление access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// User представляет публичную информацию о пользователе
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"` // ISO-8601
}

// AuthResponse представляет ответ с токенами доступа
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`  // JWT access token
	RefreshToken string `json:"refreshToken"` // refresh token
	TokenType    string `json:"tokenType"`    // всегда "Bearer"
	ExpiresIn    int64  `json:"expiresIn"`    // время жизни access token в секундах
	User         User   `json:"user"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
