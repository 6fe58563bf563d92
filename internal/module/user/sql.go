package user

import (
	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/model"

	"gorm.io/gorm"
)

func getUserByUsername(db *gorm.DB, username string) (*model.User, error) {
	var user model.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func getUserByID(db *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func usernameTaken(db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func listUsers(db *gorm.DB) ([]dto.UserInfo, error) {
	users := make([]dto.UserInfo, 0)
	err := db.Model(&model.User{}).Select("id", "username", "role").Order("username ASC").Scan(&users).Error
	return users, err
}
