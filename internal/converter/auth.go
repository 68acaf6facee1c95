package converter

import (
	dto "lucky_casino/internal/api/dto/auth"
	"lucky_casino/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
}
