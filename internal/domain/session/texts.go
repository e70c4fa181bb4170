package session

import "github.com/jhoicas/nongyiding-api/internal/domain/entity"

// Textos fijos mostrados al usuario.
const (
	welcomeGuest = "老闆您好！我是您的智慧採購助手。偵測到您尚未綁定身份，綁定後可進行叫貨與查價喔！"
	welcomeBound = "老闆您好！我是您的智慧採購助手。今天想叫些什麼貨呢？"

	// BusyText respuesta genérica cuando la interpretación falla o vence el tiempo.
	BusyText = "抱歉，系統目前有點忙碌，請稍後再試。"
)

// WelcomeText saludo inicial según el rol.
func WelcomeText(role entity.Role) string {
	if role.IsBound() {
		return welcomeBound
	}
	return welcomeGuest
}
