package CronJobs

import (
	"fmt"
	"log"
	"time"

	"CotadorSaude/Constants"
	"CotadorSaude/Models"
	"CotadorSaude/Whatsapp"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// AccessExpiry sweeps approved brokers whose plan window (monthly or
// quarterly) has lapsed and expires their access, so the login gate shows
// them the renewal screen.
type AccessExpiry struct {
	DB *gorm.DB
}

func NewAccessExpiry(db *gorm.DB) *AccessExpiry {
	return &AccessExpiry{
		DB: db,
	}
}

func (ae *AccessExpiry) StartExpiryCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Hours().Do(func() {
		log.Println("Running broker access expiry check...")
		if err := ae.ExpireLapsedAccess(); err != nil {
			log.Printf("Error expiring broker access: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Broker access expiry cron job started")

	return scheduler
}

func (ae *AccessExpiry) ExpireLapsedAccess() error {
	now := time.Now()

	var users []Models.User
	if err := ae.DB.Model(&Models.User{}).
		Where("status = ? AND approved_at IS NOT NULL", Models.StatusApproved).
		Find(&users).Error; err != nil {
		return fmt.Errorf("failed to load approved brokers: %w", err)
	}

	for index := range users {
		if !users[index].AccessExpired(now) {
			continue
		}

		if err := ae.DB.Model(&Models.User{}).
			Where("id = ?", users[index].ID).
			Update("status", Models.StatusRejected).Error; err != nil {
			log.Printf("Error expiring broker %d: %v", users[index].ID, err)
			continue
		}
		log.Printf("Broker %s access expired (%s plan)", users[index].Email, users[index].AccessPlan)

		if users[index].Phone == "" {
			continue
		}
		message := fmt.Sprintf(
			"Olá %s! Seu acesso ao cotador expirou. Para renovar, fale com a gente no WhatsApp %s.",
			users[index].FullName, Constants.AdminWhatsappPhone)
		if err := Whatsapp.SendMessage(users[index].Phone, message); err != nil {
			log.Printf("Error notifying broker %d: %v", users[index].ID, err)
		}
	}
	return nil
}
