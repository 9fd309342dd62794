package wire

import (
	"Mediahub/internal/api"
	"Mediahub/internal/api/config"
	"Mediahub/internal/api/handler"
	"Mediahub/internal/pkg/security"
	"Mediahub/internal/pkg/storage"
	"Mediahub/internal/repository"
	"Mediahub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	tokenManager := security.NewTokenManager(cfg.JWT)

	store, err := storage.NewStorage(cfg.Upload)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	mediaRepo := repository.NewMediaRepo(db)

	authService := service.NewAuthService(userRepo, tokenManager)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo, mediaRepo, userRepo)
	mediaService := service.NewMediaService(mediaRepo, categoryRepo, store)

	handlers := &api.HandlersGroup{
		AuthHandler:     handler.NewAuthHandler(authService, tokenManager),
		UserHandler:     handler.NewUserHandler(userService),
		CategoryHandler: handler.NewCategoryHandler(categoryService),
		MediaHandler:    handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers, tokenManager, userRepo)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
