// Package suggest expands intent and entity templates into follow-up
// suggestions for an assistant UI.
package suggest

import (
	"fmt"
	"strconv"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/entity"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
)

// Max is the number of suggestions returned at most.
const Max = 5

// template is a suggestion text. When needs is set, the template is used
// only if that entity type was found, and %s is filled with the first one.
type template struct {
	needs entity.Type
	text  string
}

var intentTemplates = map[intent.Label][]template{
	intent.Create: {
		{needs: entity.Person, text: "%s için yeni kayıt oluştur"},
		{needs: entity.Money, text: "%s tutarında bağış kaydı oluştur"},
		{text: "Yeni kayıt formunu aç"},
		{text: "Kaydı taslak olarak sakla"},
	},
	intent.Read: {
		{needs: entity.Person, text: "%s kayıtlarını göster"},
		{needs: entity.Date, text: "%s tarihli kayıtları listele"},
		{text: "Sonuçları filtrele"},
		{text: "Listeyi dışa aktar"},
	},
	intent.Update: {
		{needs: entity.Person, text: "%s bilgilerini güncelle"},
		{text: "Değişiklikleri kaydet"},
		{text: "Değişiklik geçmişini göster"},
	},
	intent.Delete: {
		{text: "Silme işlemini onayla"},
		{text: "Silmek yerine arşivle"},
	},
	intent.Approve: {
		{needs: entity.Person, text: "%s için onay bildirimi gönder"},
		{text: "Bekleyen diğer onayları göster"},
	},
	intent.Reject: {
		{text: "Red gerekçesi ekle"},
		{text: "Başvuru sahibini bilgilendir"},
	},
	intent.Report: {
		{needs: entity.Date, text: "%s için rapor hazırla"},
		{text: "Aylık raporu oluştur"},
		{text: "Raporu PDF olarak dışa aktar"},
		{text: "Raporu e-posta ile paylaş"},
	},
	intent.Navigate: {
		{text: "Ana sayfaya dön"},
		{text: "Son ziyaret edilen sayfayı aç"},
	},
	intent.Help: {
		{text: "Örnek komutları göster"},
		{text: "Yardım belgelerini aç"},
	},
	intent.Unknown: {
		{text: "Komutu biraz daha açık yazar mısınız?"},
		{text: "Örnek komutları göster"},
	},
}

var entityTemplates = []template{
	{needs: entity.Phone, text: "%s numarasına SMS gönder"},
	{needs: entity.Email, text: "%s adresine e-posta gönder"},
	{needs: entity.Date, text: "%s için hatırlatıcı kur"},
	{needs: entity.Priority, text: "Acil olarak işaretle"},
}

// Generate returns intent suggestions followed by entity suggestions,
// truncated to Max. The result is never nil.
func Generate(primary intent.Label, entities entity.Set) []string {
	out := make([]string, 0, Max)
	out = expand(out, intentTemplates[primary], entities)
	out = expand(out, entityTemplates, entities)
	if len(out) > Max {
		out = out[:Max]
	}
	return out
}

func expand(out []string, templates []template, entities entity.Set) []string {
	for _, tpl := range templates {
		if tpl.needs == "" {
			out = append(out, tpl.text)
			continue
		}
		if tpl.needs == entity.Priority {
			if hasHighPriority(entities) {
				out = append(out, tpl.text)
			}
			continue
		}
		if v, ok := display(tpl.needs, entities); ok {
			out = append(out, fmt.Sprintf(tpl.text, v))
		}
	}
	return out
}

// display renders the first entity of type t for a template.
func display(t entity.Type, entities entity.Set) (string, bool) {
	switch t {
	case entity.Person:
		if len(entities.Persons) > 0 {
			return entities.Persons[0].FullName, true
		}
	case entity.Money:
		if len(entities.Money) > 0 {
			m := entities.Money[0]
			return strconv.FormatFloat(m.Amount, 'f', -1, 64) + " " + m.Currency, true
		}
	case entity.Date:
		if len(entities.Dates) > 0 {
			return entities.Dates[0].Text, true
		}
	case entity.Phone:
		if len(entities.Phones) > 0 {
			return entities.Phones[0].Number, true
		}
	case entity.Email:
		if len(entities.Emails) > 0 {
			return entities.Emails[0].Address, true
		}
	}
	return "", false
}

func hasHighPriority(entities entity.Set) bool {
	for _, p := range entities.Priorities {
		if p.Level == entity.High {
			return true
		}
	}
	return false
}
