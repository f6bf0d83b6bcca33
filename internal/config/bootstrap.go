package config

import (
	"github.com/evandrarf/quizdrill/internal/delivery/http/handler"
	"github.com/evandrarf/quizdrill/internal/delivery/http/middleware"
	"github.com/evandrarf/quizdrill/internal/delivery/http/repository"
	"github.com/evandrarf/quizdrill/internal/delivery/http/route"
	"github.com/evandrarf/quizdrill/internal/delivery/http/usecase"
	"github.com/evandrarf/quizdrill/internal/pkg/validate"
	"github.com/evandrarf/quizdrill/internal/practice"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	examDefaults := practice.ExamCounts{}
	if config.Config != nil {
		examDefaults = practice.ExamCounts{
			Single:   config.Config.GetInt("exam.default.single"),
			Multiple: config.Config.GetInt("exam.default.multiple"),
			Judge:    config.Config.GetInt("exam.default.judge"),
		}
	}

	bankRepo := repository.NewQuestionBankRepository(config.DB, config.Log)
	progressRepo := repository.NewProgressRepository(config.DB)
	wrongRepo := repository.NewWrongQuestionRepository(config.DB, config.Log)
	configRepo := repository.NewConfigRepository(config.DB, examDefaults)

	questionBankUsecase := usecase.NewQuestionBankUsecase(usecase.QuestionBankConfig{
		Banks:      bankRepo,
		Wrong:      wrongRepo,
		ExamConfig: configRepo,
		Log:        config.Log,
	})
	sessionUsecase := usecase.NewSessionUsecase(usecase.SessionConfig{
		Banks:      bankRepo,
		Progress:   progressRepo,
		Wrong:      wrongRepo,
		ExamConfig: configRepo,
		Log:        config.Log,
	})

	questionBankHandler := handler.NewQuestionBankHandler(config.Validator, config.Log, questionBankUsecase)
	sessionHandler := handler.NewSessionHandler(config.Validator, config.Log, sessionUsecase)

	route.Setup(&route.RouteConfig{
		Api:                 config.Api,
		Middleware:          mid,
		QuestionBankHandler: questionBankHandler,
		SessionHandler:      sessionHandler,
	})

}
