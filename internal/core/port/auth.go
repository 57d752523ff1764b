package port

type TokenPayload struct {
	BuyerID uint64
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(buyerID uint64) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
