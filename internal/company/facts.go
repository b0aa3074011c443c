package company

import (
	"time"

	"github.com/voyago-ai/concierge-engine/internal/storage"
)

// Facts returns the curated company knowledge base. The refresh job writes
// this set into the fact collection, replacing whatever is there.
func Facts(p Profile) []storage.Fact {
	now := time.Now().UTC()
	base := p.Website

	fact := func(title, content, category, url string) storage.Fact {
		return storage.Fact{
			Title:       title,
			Content:     content,
			Category:    category,
			SourceURL:   url,
			LastUpdated: now,
			Active:      true,
		}
	}

	return []storage.Fact{
		fact("Namlı Turizm - Ana Sayfa",
			"1979'dan beri hizmet veren, 121+ araç filosu ile güvenilir turizm ve taşımacılık firması. #NAMLIHERYERDE sloganı ile Türkiye'nin her yerinde hizmet vermektedir.",
			CategoryGeneral, base),
		fact("Şirket Sloganları",
			"Ana Slogan: #NAMLIHERYERDE | Motto: 1979'dan Günümüze Uzağı Yakın Ederiz | Diğer: Geleceğimizi Taşıyoruz, Güveninizi Taşıyoruz, Her Yolda Yanınızdayız Her Zaman Güvende!",
			CategoryCorporate, base),
		fact("Namlı Turizm Hakkında",
			"Namlı Turizm, 1979 yılında Mehmet Namlı tarafından kurulmuş, günümüzde Mustafa Namlı yönetiminde hizmet veren köklü bir turizm ve taşımacılık firmasıdır. 46+ yıllık deneyimi ile sektörün öncü firmalarından biridir.",
			CategoryCorporate, base+"/kurumsal"),
		fact("Tarihçe",
			"1969: Mehmet Namlı Pamukkale Turizm'de şoförlük yaparak başladı. 1982: İlk araç Mercedes O 302 ile kendi işine başladı. 1987: NAMLI TURİZM resmi olarak kuruldu. Günümüz: Mustafa Namlı yönetiminde 121+ araç filosu ile hizmet veriyor.",
			CategoryCorporate, base+"/kurumsal/tarihce"),
		fact("Kalite Politikası",
			"Müşteri memnuniyetini en üst düzeyde tutmak, zengin araç parkı ile bilinçli seçim hakkı sunmak, çözüm ortağı olmak ve personel motivasyonunu yüksek tutarak verimlilik sağlamak temel hedeflerimizdir.",
			CategoryCorporate, base+"/kurumsal/kalite-politikasi"),
		fact("Güvenli Taşımacılık Politikası",
			"Taşınan kişilerin değerini bilerek araçların periyodik bakımlarını eksiksiz yapıyor, kanunların öngördüğü güvenlik koşullarını sağlıyor ve sürekli yenilenen filo ile güvenli hizmet sunuyoruz.",
			CategoryCorporate, base+"/kurumsal/guvenlik"),
		fact("GAP Turu",
			"Güneydoğu Anadolu Projesi bölgesine 4 gece otel konaklamalı tur. Denizli kalkışlı, tarihi ve kültürel zenginlikleri keşfetme fırsatı.",
			CategoryTours, base+"/turlar/gap-turu"),
		fact("Doğu Karadeniz Turu",
			"6 gece 7 gün Doğu Karadeniz turu. Batum dahil 5 gece otel konaklamalı. Yeşilin her tonunu görebileceğiniz muhteşem bir doğa turu.",
			CategoryTours, base+"/turlar/dogu-karadeniz"),
		fact("İstanbul & Adalar Turu",
			"2 gece 3 gün İstanbul ve Adalar turu. Tarihi yarımada, Boğaz turu ve Büyükada gezisi dahil.",
			CategoryTours, base+"/turlar/istanbul-adalar"),
		fact("Efes-Doğanbey Turu",
			"Günübirlik Efes antik kenti ve Doğanbey köyü turu. Denizli kalkışlı, rehberli gezi.",
			CategoryTours, base+"/turlar/efes-doganbey"),
		fact("Tur Kategorileri",
			"Konaklamalı kültür turları, günübirlik turlar, yurtdışı turlar olmak üzere 50'den fazla tur programı. Özel rotalar ve eşsiz deneyimlerle seyahatin keyfini çıkarın.",
			CategoryTours, base+"/turlar"),
		fact("Öğrenci Servis Taşımacılığı",
			"Konforlu, hijyenik ve güvenli okul servisi hizmeti. Denetimli ve belgeli şoförler, rehber personel desteği ile çocuklarınızın güvenliği bizim önceliğimiz.",
			CategoryServices, base+"/hizmetler/ogrenci-servisi"),
		fact("Personel Servis Taşımacılığı",
			"Dakik, güvenli ve konforlu personel taşımacılığı. Deneyimli ve belgeli şoförler, sigortalı ve güvenceli taşımacılık ile işe gidiş-gelişleriniz artık sorun değil.",
			CategoryServices, base+"/hizmetler/personel-servisi"),
		fact("VIP Transfer Hizmetleri",
			"Havalimanı transferleri ve özel günleriniz için VIP araç hizmeti. Konforlu araçlar ve deneyimli şoförlerle zamanında ve güvenli transfer.",
			CategoryServices, base+"/hizmetler/vip-transfer"),
		fact("Araç Kiralama",
			"Temiz ve bakımlı araç kiralama hizmeti. Kolay rezervasyon süreci ile ihtiyacınıza uygun araçları kiralayabilirsiniz.",
			CategoryServices, base+"/hizmetler/arac-kiralama"),
		fact("Araç Filosu Genel Bilgi",
			"121+ donanımlı araç ile hizmet veriyoruz. Mercedes, Temsa, Otokar gibi kaliteli markalardan oluşan filomuz sürekli yenileniyor. 2024 ve 2025 model araçlarımız da mevcuttur.",
			CategoryFleet, base+"/arac-filomuz"),
		fact("Otobüs Filosu",
			"Temsa Prestij, Otokar Sultan 31+1, Temsa Yeni Safir 50+1 ve 54+1, 2024 Temsa Yeni Safir, 2025 Mercedes Benz Tourismo. Büyük tur organizasyonları için.",
			CategoryFleet, base+"/arac-filomuz/otobusler"),
		fact("Müşteri Değerlendirmeleri",
			"5.0 üzerinden 4.8 puan, 230+ müşteri yorumu. %100 müşteri memnuniyeti hedefiyle çalışıyoruz.",
			CategoryReferences, base+"/referanslarimiz"),
		fact("Kurumsal Referanslar",
			"Denizli'nin önde gelen şirketlerine personel servisi, okullara öğrenci servisi, turizm acentelerine araç kiralama hizmeti veriyoruz. TURSAB üyesiyiz.",
			CategoryReferences, base+"/referanslarimiz/kurumsal"),
		fact("İletişim Bilgileri",
			"Ana Ofis: Pelitlibağ Mah. 1126 Sok. No:22 Pamukkale/DENİZLİ. Tel: +90 258 263 33 77. E-posta: seyahat@namliturizm.com. Web: www.namliturizm.com",
			CategoryContact, base+"/iletisim"),
		fact("Departmanlar",
			"Tur Departmanı: Ayşe Kaban - +90 530 147 95 77 - ayse.kaban@namliturizm.com. Personel Servis: Suat Kızılöz - +90 532 302 76 80 - suat.kiziloz@namliturizm.com",
			CategoryContact, base+"/iletisim/departmanlar"),
		fact("Online Hizmetler",
			"Online rezervasyon ve ödeme imkanı sunuyoruz. Web sitemiz üzerinden tur rezervasyonu yapabilir, güvenli ödeme ile işleminizi tamamlayabilirsiniz.",
			CategoryContact, base+"/online-hizmetler"),
	}
}
