package audit

import (
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser istek bağlamındaki kullanıcı kimliğini ve adını döner.
// Kullanıcı bulunamazsa ad boş kalır, log yine yazılır.
func CurrentUser(c *fiber.Ctx) (uint, string) {
	id, _ := c.Locals("user_id").(uint)
	if id == 0 {
		return 0, ""
	}
	var user models.User
	if err := database.DB.Select("name").First(&user, id).Error; err != nil {
		return id, ""
	}
	return id, user.Name
}
