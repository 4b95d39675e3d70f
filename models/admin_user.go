package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminUser struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Username string `gorm:"size:100;unique;not null" json:"username"`
	Password string `gorm:"column:password_hash;size:255;not null" json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// BeforeSave hashea la contraseña al crear el usuario o al cambiarla.
func (u *AdminUser) BeforeSave(tx *gorm.DB) (err error) {
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashed)
	}
	return
}

// CheckPassword verifica la contraseña contra el hash almacenado.
func (u *AdminUser) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
