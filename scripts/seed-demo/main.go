package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/nghia89/landingpage-wedding-sub000/config"
	"github.com/nghia89/landingpage-wedding-sub000/migrations"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/postgres"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/seed-demo/main.go <path/to/config.yaml>")
		fmt.Println("Example: go run scripts/seed-demo/main.go config/config.yaml")
		os.Exit(1)
	}
	configPath := os.Args[1]

	os.Setenv("CONFIG_PATH", configPath)
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	db, err := postgres.Connect(postgres.Config{
		DSN:          cfg.Postgres.DSN,
		MaxOpenConns: 2,
		MaxIdleConns: 1,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db, migrations.FS); err != nil {
		logger.Fatalf(ctx, "Failed to run migrations: %v", err)
	}

	logger.Info(ctx, "Seeding demo data...")

	seeds := []struct {
		name string
		fn   func(context.Context, *sql.DB) (int64, error)
	}{
		{"services", seedServices},
		{"gallery_images", seedGallery},
		{"reviews", seedReviews},
		{"promotions", seedPromotions},
		{"site_settings", seedSettings},
	}

	for _, s := range seeds {
		n, err := s.fn(ctx, db)
		if err != nil {
			logger.Fatalf(ctx, "Failed to seed %s: %v", s.name, err)
		}
		logger.Infof(ctx, "Seeded %s: %d rows", s.name, n)
	}

	logger.Info(ctx, "Demo data seeded.")
}

func seedServices(ctx context.Context, db *sql.DB) (int64, error) {
	rows := [][]any{
		{"Trọn gói tiệc cưới", "Full wedding package from decor to coordination", "package", "80-150 triệu", true},
		{"Chụp ảnh cưới", "Pre-wedding and ceremony photography", "photography", "15-40 triệu", true},
		{"Trang trí sảnh tiệc", "Venue decoration and floral styling", "decoration", "20-60 triệu", true},
		{"Makeup cô dâu", "Bridal makeup and hair, trial included", "beauty", "5-12 triệu", false},
	}
	var total int64
	for _, r := range rows {
		res, err := db.ExecContext(ctx, `
			INSERT INTO services (name, description, category, price_range, is_active)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO NOTHING`, r...)
		if err != nil {
			return total, err
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

func seedGallery(ctx context.Context, db *sql.DB) (int64, error) {
	rows := [][]any{
		{"Sảnh tiệc ánh vàng", "https://cdn.example.com/gallery/hall-gold.jpg", "venue", 1},
		{"Cổng hoa tươi", "https://cdn.example.com/gallery/flower-gate.jpg", "decoration", 2},
		{"Khoảnh khắc trao nhẫn", "https://cdn.example.com/gallery/ring.jpg", "ceremony", 3},
	}
	var total int64
	for _, r := range rows {
		res, err := db.ExecContext(ctx, `
			INSERT INTO gallery_images (title, image_url, category, sort_order)
			VALUES ($1, $2, $3, $4)`, r...)
		if err != nil {
			return total, err
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

func seedReviews(ctx context.Context, db *sql.DB) (int64, error) {
	rows := [][]any{
		{"Minh & Hoa", 5, "Đội ngũ chu đáo, tiệc diễn ra hoàn hảo!", true},
		{"Tuấn & Linh", 5, "Trang trí đẹp hơn cả mong đợi.", true},
		{"Khách ẩn danh", 3, "Ổn nhưng phản hồi hơi chậm.", false},
	}
	var total int64
	for _, r := range rows {
		res, err := db.ExecContext(ctx, `
			INSERT INTO reviews (customer_name, rating, content, is_approved)
			VALUES ($1, $2, $3, $4)`, r...)
		if err != nil {
			return total, err
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

func seedPromotions(ctx context.Context, db *sql.DB) (int64, error) {
	rows := [][]any{
		{"Ưu đãi mùa cưới", "Giảm giá cho tiệc tổ chức trong quý 4", "10%", "2026-10-01", "2026-12-31", true},
		{"Đặt sớm 2027", "Giữ giá 2026 cho tiệc năm sau", "15%", "2026-09-01", "2027-01-31", true},
	}
	var total int64
	for _, r := range rows {
		res, err := db.ExecContext(ctx, `
			INSERT INTO promotions (title, description, discount, start_date, end_date, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)`, r...)
		if err != nil {
			return total, err
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

func seedSettings(ctx context.Context, db *sql.DB) (int64, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO site_settings (id, site_name, tagline, phone, email, address, working_hours)
		VALUES (1, 'Wedding Studio', 'Nơi bắt đầu hạnh phúc', '0901234567', 'hello@weddingstudio.vn', '12 Nguyễn Huệ, Q.1, TP.HCM', '08:00 - 20:00')
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
