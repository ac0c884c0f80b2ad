package intent

import "regexp"

var defaultClassifier = NewClassifier(DefaultRules())

// DefaultRules returns the built-in Turkish rule table. Keywords are matched
// as substrings of the lowercased text, so stems like "güncelle" also catch
// "güncellensin".
func DefaultRules() []Rule {
	return []Rule{
		{
			Label:    Create,
			Keywords: []string{"ekle", "oluştur", "yeni", "kaydet", "tanımla", "yarat", "kayıt aç"},
			Phrases: phrases(
				`yeni\s+.*(ekle|oluştur|kaydet|aç)`,
				`(kayıt|hesap|başvuru|dosya|görev)\s*(oluştur|aç)`,
				`\S+\s+(ekle|ekler misin|eklensin)\b`,
			),
			BaseConfidence: 0.9,
		},
		{
			Label:    Read,
			Keywords: []string{"göster", "listele", "getir", "görüntüle", "sorgula", "bul", "incele", "kimler", "hangi"},
			Phrases: phrases(
				`(tüm|bütün|son)\s+\S+.*(göster|listele|getir)`,
				`\S+\s+(listesi|listesini)`,
				`(kaç|ne kadar)\s+\S+\s+(var|kaldı)`,
			),
			BaseConfidence: 0.85,
		},
		{
			Label:    Update,
			Keywords: []string{"güncelle", "değiştir", "düzenle", "düzelt", "revize"},
			Phrases: phrases(
				`(bilgi|adres|telefon|durum|tutar)\S*\s+(güncelle|değiştir|düzelt)`,
				`olarak\s+(değiştir|güncelle|işaretle)`,
			),
			BaseConfidence: 0.85,
		},
		{
			Label:    Delete,
			Keywords: []string{"sil", "kaldır", "iptal et", "yok et", "temizle"},
			Phrases: phrases(
				`(kayd|dosya|başvuru|bağış)\S*\s+(sil|kaldır)`,
				`(tamamen|kalıcı olarak)\s+sil`,
			),
			BaseConfidence: 0.9,
		},
		{
			Label:    Approve,
			Keywords: []string{"onayla", "onay ver", "kabul et", "tasdik", "uygun gör"},
			Phrases: phrases(
				`(başvuru|talep|ödeme|yardım)\S*\s+onayla`,
				`onaylan(sın|malı)`,
			),
			BaseConfidence: 0.85,
		},
		{
			Label:    Reject,
			Keywords: []string{"reddet", "geri çevir", "kabul etme", "onaylama", "ret ver"},
			Phrases: phrases(
				`(başvuru|talep|ödeme|yardım)\S*\s+reddet`,
				`reddedil(sin|meli)`,
			),
			BaseConfidence: 0.85,
		},
		{
			Label:    Report,
			Keywords: []string{"rapor", "istatistik", "analiz", "özet", "grafik", "dağılım"},
			Phrases: phrases(
				`(günlük|haftalık|aylık|yıllık)\s+\S*\s*rapor`,
				`rapor\S*\s+(oluştur|hazırla|çıkar|al|ver)`,
			),
			BaseConfidence: 0.9,
		},
		{
			Label:    Navigate,
			Keywords: []string{"sayfasına", "ekranına", "sayfayı aç", "yönlendir", "geçiş yap", "menüsüne"},
			Phrases: phrases(
				`\S+\s+(sayfa|ekran|modül|menü)\S*\s+(git|geç|aç)`,
				`(ana sayfa|anasayfa)\S*\s*(dön|git)`,
			),
			BaseConfidence: 0.8,
		},
		{
			Label:    Help,
			Keywords: []string{"yardım", "nasıl", "ne yapabilirim", "destek", "anlamadım", "açıklar mısın"},
			Phrases: phrases(
				`nasıl\s+\S+`,
				`yardım\S*\s+(et|eder|lazım)`,
			),
			BaseConfidence: 0.8,
		},
	}
}

func phrases(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}
