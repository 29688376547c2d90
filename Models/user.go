package Models

import (
	"CotadorSaude/Utils/Token"
	"errors"
	"html"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	AccessPlanMonthly   = "monthly"
	AccessPlanQuarterly = "quarterly"
)

// User is a broker account. Registration lands in pending; an admin approves
// it with an access plan or rejects it. Only approved users can log in, and
// the expiry cron flips approved users back to rejected when their plan
// window lapses.
type User struct {
	gorm.Model
	Email      string     `gorm:"size:255;not null;unique" json:"email"`
	Password   string     `gorm:"size:255;not null;" json:"password"`
	FullName   string     `gorm:"size:255" json:"full_name"`
	CPF        string     `gorm:"size:20" json:"cpf"`
	Phone      string     `gorm:"size:30" json:"phone"`
	Permission int        `json:"permission"`
	Status     string     `gorm:"size:20;default:pending" json:"status"`
	AccessPlan string     `gorm:"size:20" json:"access_plan"`
	ApprovedAt *time.Time `json:"approved_at"`
}

// AccessWindow is how long an access plan lasts before renewal.
func (user *User) AccessWindow() time.Duration {
	if user.AccessPlan == AccessPlanQuarterly {
		return 90 * 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}

// AccessExpired reports whether an approved user's plan window has lapsed.
func (user *User) AccessExpired(now time.Time) bool {
	if user.Status != StatusApproved || user.ApprovedAt == nil {
		return false
	}
	return now.After(user.ApprovedAt.Add(user.AccessWindow()))
}

func (user *User) IsAdmin() bool {
	return user.Permission >= 2
}

func GetUserByID(uid uint) (User, error) {
	var user User

	if err := DB.First(&user, uid).Error; err != nil {
		return user, errors.New("User not found")
	}

	user.PrepareGive()

	return user, nil
}

func (user *User) PrepareGive() {
	user.Password = ""
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func LoginCheck(email string, password string) (uint, string, error) {

	var err error

	user := User{}

	err = DB.Model(User{}).Where("email = ?", email).Take(&user).Error

	if err != nil {
		return 0, "", err
	}

	err = VerifyPassword(password, user.Password)

	if err != nil && err == bcrypt.ErrMismatchedHashAndPassword {
		return 0, "", err
	}

	token, err := Token.GenerateToken(user.ID)

	if err != nil {
		return 0, "", err
	}

	return user.ID, token, nil
}

func (user *User) SaveUser() (*User, error) {

	if err := user.BeforeSave(); err != nil {
		return &User{}, err
	}

	if err := DB.Create(&user).Error; err != nil {
		return &User{}, err
	}

	return user, nil
}

func (user *User) BeforeSave() error {

	//turn password into hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	//normalize the email
	user.Email = html.EscapeString(strings.TrimSpace(strings.ToLower(user.Email)))

	return nil
}

func (user *User) UpdatePassword(newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return DB.Model(&User{}).Where("id = ?", user.ID).Update("password", string(hashedPassword)).Error
}
