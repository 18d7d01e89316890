package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Çekirdek hata türleri. Handler'lar bu türlere göre HTTP durum kodu seçer;
// hiçbiri süreç için ölümcül değildir, çağıran düzeltilmiş veriyle tekrar deneyebilir.
var (
	ErrValidation = errors.New("doğrulama hatası")
	ErrDuplicate  = errors.New("benzersizlik ihlali")
	ErrLocked     = errors.New("kayıt kilitli")
	ErrReferenced = errors.New("kayıt başka kayıtlarca kullanılıyor")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Duplicatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, fmt.Sprintf(format, args...))
}

func Lockedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLocked, fmt.Sprintf(format, args...))
}

func Referencedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrReferenced, fmt.Sprintf(format, args...))
}

// ToFiber çekirdek hatayı kullanıcıya dönecek fiber hatasına çevirir.
// Tanınmayan hatalar olduğu gibi döner; main'deki ErrorHandler 500 üretir.
func ToFiber(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrLocked):
		return fiber.NewError(fiber.StatusLocked, err.Error())
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrReferenced):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.NewError(fiber.StatusConflict, "Benzersizlik ihlali: aynı anahtarla kayıt zaten var")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fiber.NewError(fiber.StatusConflict, "Kayıt başka kayıtlarca kullanılıyor veya referans geçersiz")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Kayıt bulunamadı")
	default:
		return err
	}
}
