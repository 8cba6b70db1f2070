// Package authhdl chứa các handler HTTP cho xác thực và quản lý salesman.
package authhdl

import (
	authdto "github.com/tanavishali52/BE-saleman/internal/api/auth/dto"
	authsvc "github.com/tanavishali52/BE-saleman/internal/api/auth/service"
	basehdl "github.com/tanavishali52/BE-saleman/internal/api/base/handler"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AuthHandler xử lý đăng ký, đăng nhập, token và quên mật khẩu
type AuthHandler struct {
	*basehdl.BaseHandler
	authService *authsvc.AuthService
}

// NewAuthHandler tạo AuthHandler
func NewAuthHandler(authService *authsvc.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: basehdl.NewBaseHandler(),
		authService: authService,
	}
}

// HandleSignup đăng ký tài khoản (luôn là admin)
func (h *AuthHandler) HandleSignup(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.SignupInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.authService.Signup(c.Context(), &input)
		if err == nil {
			logger.LogAuth("signup", c, map[string]interface{}{"resource_id": user.ID.Hex(), "resource_type": "user"})
		}
		h.HandleResponseStatus(c, common.StatusCreated, user, err)
		return nil
	})
}

// HandleLogin đăng nhập bằng email và mật khẩu
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		pair, err := h.authService.Login(c.Context(), &input)
		logger.LogAuth("login", c, map[string]interface{}{"email": input.Email, "success": err == nil})
		h.HandleResponse(c, pair, err)
		return nil
	})
}

// HandleRefreshToken cấp access token mới từ refresh token
func (h *AuthHandler) HandleRefreshToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RefreshTokenInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		accessToken, err := h.authService.Refresh(c.Context(), input.RefreshToken)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, authdto.AccessTokenOutput{AccessToken: accessToken}, nil)
		return nil
	})
}

// HandleLogout hủy refresh token. Không có phiên nào khớp thì trả về 204.
func (h *AuthHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LogoutInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		matched, err := h.authService.Logout(c.Context(), input.RefreshToken)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !matched {
			h.HandleResponseStatus(c, common.StatusNoContent, nil, nil)
			return nil
		}

		logger.LogAuth("logout", c, nil)
		h.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của người dùng đang đăng nhập
func (h *AuthHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		principal, err := h.CurrentPrincipal(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.ChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.authService.ChangePassword(c.Context(), principal, &input)
		if err == nil {
			logger.LogAuth("change_password", c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetProfile trả về thông tin người dùng đang đăng nhập
func (h *AuthHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		principal, err := h.CurrentPrincipal(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.authService.Profile(c.Context(), principal)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleForgotPassword gửi mã đặt lại mật khẩu qua email
func (h *AuthHandler) HandleForgotPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.ForgotPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.authService.ForgotPassword(c.Context(), input.Email)
		logger.LogAuth("forgot_password", c, map[string]interface{}{"email": input.Email, "success": err == nil})
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleVerifyCode kiểm tra mã đặt lại mật khẩu
func (h *AuthHandler) HandleVerifyCode(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.VerifyCodeInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.authService.VerifyCode(c.Context(), input.Email, input.Code)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleResetPassword đặt lại mật khẩu bằng mã
func (h *AuthHandler) HandleResetPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.ResetPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.authService.ResetPassword(c.Context(), &input)
		logger.LogAuth("reset_password", c, map[string]interface{}{"email": input.Email, "success": err == nil})
		h.HandleResponse(c, nil, err)
		return nil
	})
}
