package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-pricing-api/internal/config"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthWithMocks(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "segredo-de-teste"}

	return NewService(userRepo, cfg), userRepo
}

func hashOf(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(t *testing.T, userRepo *mocks.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "Login válido gera token",
			email:    " Ana@Exemplo.com ",
			password: "Senha@Forte1",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana@exemplo.com").
					Return(&domain.User{
						ID:           7,
						Name:         "Ana",
						Email:        "ana@exemplo.com",
						Active:       true,
						RoleID:       3,
						PasswordHash: hashOf(t, "Senha@Forte1"),
					}, nil)
			},
		},
		{
			name:     "Campos obrigatórios ausentes",
			email:    "",
			password: "",
			setup:    func(t *testing.T, userRepo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@exemplo.com",
			password: "Senha@Forte1",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ninguem@exemplo.com").Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada",
			email:    "ana@exemplo.com",
			password: "Senha@Forte1",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana@exemplo.com").
					Return(&domain.User{ID: 7, Active: false, PasswordHash: hashOf(t, "Senha@Forte1")}, nil)
			},
			wantErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "ana@exemplo.com",
			password: "senha-errada",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana@exemplo.com").
					Return(&domain.User{ID: 7, Active: true, PasswordHash: hashOf(t, "Senha@Forte1")}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := newAuthWithMocks(t)
			tt.setup(t, userRepo)

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_LoginUser_TokenCarregaClaims(t *testing.T) {
	service, userRepo := newAuthWithMocks(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@exemplo.com").
		Return(&domain.User{
			ID:           7,
			Name:         "Ana",
			Lastname:     "Silva",
			Email:        "ana@exemplo.com",
			Active:       true,
			RoleID:       2,
			PasswordHash: hashOf(t, "Senha@Forte1"),
		}, nil)

	token, err := service.LoginUser("ana@exemplo.com", "Senha@Forte1")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, 2, claims.UserRoleID)
	assert.True(t, claims.UserActive)
}

func TestService_ValidateToken_TokenInvalido(t *testing.T) {
	service, _ := newAuthWithMocks(t)

	claims, err := service.ValidateToken("nao-e-um-jwt")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestService_CreateUser(t *testing.T) {
	t.Run("Usuário novo entra com hash e papel padrão", func(t *testing.T) {
		service, userRepo := newAuthWithMocks(t)

		userRepo.EXPECT().GetUserByEmail("novo@exemplo.com").Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "novo@exemplo.com", user.Email)
				assert.Equal(t, 3, user.RoleID)
				assert.False(t, user.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@Forte1")))

				saved := *user
				saved.ID = 10
				return &saved, nil
			})

		user, err := service.CreateUser(&domain.User{
			Name:         "Novo",
			Lastname:     "Usuário",
			Email:        "Novo@Exemplo.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, 10, user.ID)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		service, userRepo := newAuthWithMocks(t)

		userRepo.EXPECT().
			GetUserByEmail("ana@exemplo.com").
			Return(&domain.User{ID: 7, Email: "ana@exemplo.com"}, nil)

		user, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Silva",
			Email:        "ana@exemplo.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		service, _ := newAuthWithMocks(t)

		user, err := service.CreateUser(&domain.User{Email: "so-email@exemplo.com"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
		assert.Nil(t, user)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service, _ := newAuthWithMocks(t)

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "Senha forte passa", password: "Senha@Forte1"},
		{name: "Curta demais", password: "S@f1", wantErr: "pelo menos 8 caracteres"},
		{name: "Sem maiúscula", password: "senha@forte1", wantErr: "letra maiúscula"},
		{name: "Sem minúscula", password: "SENHA@FORTE1", wantErr: "letra minúscula"},
		{name: "Sem número", password: "Senha@Forte", wantErr: "um número"},
		{name: "Sem caractere especial", password: "SenhaForte1", wantErr: "caractere especial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("Troca válida grava o novo hash", func(t *testing.T) {
		service, userRepo := newAuthWithMocks(t)

		userRepo.EXPECT().
			GetUserByID(7).
			Return(&domain.User{ID: 7, PasswordHash: hashOf(t, "Senha@Antiga1")}, nil)
		userRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@Nova22")))
				return nil
			})

		assert.NoError(t, service.ChangePassword(7, "Senha@Antiga1", "Senha@Nova22"))
	})

	t.Run("Senha atual incorreta", func(t *testing.T) {
		service, userRepo := newAuthWithMocks(t)

		userRepo.EXPECT().
			GetUserByID(7).
			Return(&domain.User{ID: 7, PasswordHash: hashOf(t, "Senha@Antiga1")}, nil)

		err := service.ChangePassword(7, "palpite-errado", "Senha@Nova22")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Nova senha fraca não é gravada", func(t *testing.T) {
		service, userRepo := newAuthWithMocks(t)

		userRepo.EXPECT().
			GetUserByID(7).
			Return(&domain.User{ID: 7, PasswordHash: hashOf(t, "Senha@Antiga1")}, nil)

		err := service.ChangePassword(7, "Senha@Antiga1", "fraca")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "a senha deve conter")
	})
}

func TestService_GenerateStrongPassword(t *testing.T) {
	t.Run("Administrador gera senha forte para o alvo", func(t *testing.T) {
		service, userRepo := newAuthWithMocks(t)

		userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: 1}, nil)
		userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, RoleID: 3}, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

		password, err := service.GenerateStrongPassword(1, 7)

		require.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})

	t.Run("Não administrador é barrado", func(t *testing.T) {
		service, userRepo := newAuthWithMocks(t)

		userRepo.EXPECT().GetUserByID(5).Return(&domain.User{ID: 5, RoleID: 3}, nil)

		password, err := service.GenerateStrongPassword(5, 7)

		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
		assert.Empty(t, password)
	})
}
