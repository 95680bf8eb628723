// Command createuser provisions a dashboard account.
//
//	go run ./cmd/createuser -username alice -password Passw0rd1 -role admin
package main

import (
	"context"
	"errors"
	"flag"
	"time"
	"wedding-api/common"
	"wedding-api/config"
	"wedding-api/db"
	"wedding-api/logger"
	"wedding-api/model"
	"wedding-api/repository"
	"wedding-api/service"

	"github.com/sirupsen/logrus"
)

func main() {
	username := flag.String("username", "", "login name")
	password := flag.String("password", "", "password")
	role := flag.String("role", string(model.RoleAdmin), "admin or member")
	configPath := flag.String("config", ".", "directory holding config.yml")
	flag.Parse()

	config.LoadConfig(*configPath)
	logger.InitWithLevel(config.AppConfig.Log.Level)

	req := model.CreateUserRequest{Username: *username, Password: *password, Role: model.Role(*role)}
	if appErr := common.Validate(&req); appErr != nil {
		logger.Log.WithField("fields", appErr.Fields).Fatal(appErr.Message)
	}

	database, err := db.Connect(config.AppConfig.Database)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		logger.Log.Fatalf("Error applying migrations: %v", err)
	}

	hash, err := service.NewPasswordHasher(0).Hash(req.Password)
	if err != nil {
		logger.Log.Fatalf("Error hashing password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := &model.User{Username: req.Username, PasswordHash: hash, Role: req.Role}
	if err := repository.NewUserRepository(database).CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			logger.Log.WithField("username", req.Username).Fatal("User already exists")
		}
		logger.Log.Fatalf("Error creating user: %v", err)
	}

	logger.Log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username, "role": user.Role}).Info("User created")
}
