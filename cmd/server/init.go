package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"qrscanner_admin/config"
	adminhdl "qrscanner_admin/internal/api/admin/handler"
	adminmodels "qrscanner_admin/internal/api/admin/models"
	adminsvc "qrscanner_admin/internal/api/admin/service"
	authhdl "qrscanner_admin/internal/api/auth/handler"
	authsvc "qrscanner_admin/internal/api/auth/service"
	basesvc "qrscanner_admin/internal/api/base/service"
	qrhdl "qrscanner_admin/internal/api/qr/handler"
	qrsvc "qrscanner_admin/internal/api/qr/service"
	"qrscanner_admin/internal/database"
	"qrscanner_admin/internal/global"
	"qrscanner_admin/internal/utility"
)

// application gom toàn bộ thành phần đã khởi tạo của server.
// Mọi phụ thuộc được truyền qua constructor, không dùng handle toàn cục.
type application struct {
	cfg         *config.Configuration
	mongoClient *mongo.Client

	authService *authsvc.AuthService

	authHandler  *authhdl.AuthHandler
	adminHandler *adminhdl.AdminHandler
	qrHandler    *qrhdl.QRHandler
}

// initApplication khởi tạo config, validator, database và toàn bộ service/handler
func initApplication() *application {
	initColNames()
	initValidator()

	cfg := initConfig()
	mongoClient := initDatabaseMongoDB(cfg)

	db := mongoClient.Database(cfg.MongoDB_DBName)
	registerCollections(db)

	userStore := basesvc.NewMongoDocumentService[adminmodels.User](db.Collection(global.ColNames.Users))
	videoStore := basesvc.NewMongoDocumentService[adminmodels.Video](db.Collection(global.ColNames.Videos))
	appStore := basesvc.NewMongoDocumentService[adminmodels.AppConfig](db.Collection(global.ColNames.App))

	userService := adminsvc.NewUserService(userStore)
	videoService := adminsvc.NewVideoService(videoStore)
	appConfigService := adminsvc.NewAppConfigService(appStore)
	posterService := qrsvc.NewPosterService(appConfigService, cfg.BadgeImagePath, cfg.LogoImagePath)
	authService := initAuthService(cfg)

	return &application{
		cfg:          cfg,
		mongoClient:  mongoClient,
		authService:  authService,
		authHandler:  authhdl.NewAuthHandler(authService),
		adminHandler: adminhdl.NewAdminHandler(userService, videoService, appConfigService),
		qrHandler:    qrhdl.NewQRHandler(posterService),
	}
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.Users = "users"
	global.ColNames.Videos = "videos"
	global.ColNames.App = "App"
	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validator: no_xss)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() *config.Configuration {
	cfg := config.NewConfig()
	if cfg == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
	return cfg
}

// Hàm khởi tạo kết nối database
func initDatabaseMongoDB(cfg *config.Configuration) *mongo.Client {
	client, err := database.GetInstance(cfg)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")
	return client
}

// registerCollections đăng ký các collection vào registry toàn cục
func registerCollections(db *mongo.Database) {
	for _, name := range []string{global.ColNames.Users, global.ColNames.Videos, global.ColNames.App} {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			logrus.Fatalf("Failed to register collection %s: %v", name, err)
		}
	}
	logrus.Info("Registered collections")
}

// initAuthService khởi tạo Firebase Admin SDK và service phát hành session
func initAuthService(cfg *config.Configuration) *authsvc.AuthService {
	firebaseAuth, err := utility.InitFirebaseAuth(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
	if err != nil {
		logrus.Fatalf("Failed to initialize Firebase: %v", err)
	}
	logrus.Info("Initialized Firebase Admin SDK")

	return authsvc.NewAuthService(
		authsvc.NewFirebaseVerifier(firebaseAuth),
		cfg.JwtSecret,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
		cfg.AdminUIDList(),
	)
}
