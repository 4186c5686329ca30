package document

import "github.com/sdlpal/scripts/internal/makemessage/charset"

// equipmentWords は装備メニューの部位名（600〜605）
var equipmentWords = []string{"頭戴", "披掛", "身穿", "手持", "脚穿", "佩帶"}

type encodingWords struct {
	battleSpeed   string // 606
	launchSetting string // 612
}

func fixedWords(enc charset.Encoding) encodingWords {
	if enc == charset.GBK {
		return encodingWords{battleSpeed: "战斗速度", launchSetting: "返回设定"}
	}
	return encodingWords{battleSpeed: "戰鬥速度", launchSetting: "返回設定"}
}
