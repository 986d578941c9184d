package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcanhquan/royalvietnam-backend/config"
	"github.com/hcanhquan/royalvietnam-backend/internal/db"
	"github.com/hcanhquan/royalvietnam-backend/internal/errors"
	"github.com/hcanhquan/royalvietnam-backend/internal/middleware"
	"gorm.io/gorm"
)

type SystemController struct {
	db      *gorm.DB
	authCfg *config.AuthConfig
}

func NewSystemController(database *gorm.DB, authCfg *config.AuthConfig) *SystemController {
	return &SystemController{db: database, authCfg: authCfg}
}

// InitializeDB runs migrations and seeds the default admin. Safe to call more
// than once.
// POST /api/initialize-db
func (ctrl *SystemController) InitializeDB(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if err := db.MigrateWith(ctrl.db, ctrl.authCfg.SeedAdminUsername, ctrl.authCfg.SeedAdminPassword); err != nil {
		log.Error("Database initialization failed", err, nil)
		errors.InternalError(c, "Khởi tạo cơ sở dữ liệu thất bại")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cơ sở dữ liệu đã sẵn sàng",
	})
}
