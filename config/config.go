package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	Port               string `env:"PORT" envDefault:"8080"`                         // Cổng server
	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`  // Bí mật ký access token
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET,required,notEmpty"` // Bí mật ký refresh token
	AccessTokenTTL     int    `env:"ACCESS_TOKEN_TTL" envDefault:"900"`              // Thời hạn access token (giây)
	RefreshTokenTTL    int    `env:"REFRESH_TOKEN_TTL" envDefault:"604800"`          // Thời hạn refresh token (giây)

	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required,notEmpty"` // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"salesman_order"`  // Tên cơ sở dữ liệu

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = tắt)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// SMTP dùng để gửi mã đặt lại mật khẩu
	SMTP SMTPConfig `envPrefix:"SMTP_"`

	// Chu kỳ dọn mã reset hết hạn (giây, 0 = tắt)
	ResetCodeSweepInterval int `env:"RESET_CODE_SWEEP_INTERVAL" envDefault:"300"`

	// Admin khởi tạo khi chưa có admin nào (tùy chọn)
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"Administrator"`
	AdminPhone    string `env:"ADMIN_PHONE"`
	AdminAddress  string `env:"ADMIN_ADDRESS"`
}

// SMTPConfig chứa cấu hình máy chủ email
type SMTPConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Secure   bool   `env:"SECURE" envDefault:"false"` // true = SSL trực tiếp (thường cổng 465)
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
}

// Configured cho biết SMTP đã đủ thông tin để gửi mail chưa
func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.User != "" && s.Password != ""
}

// Sender trả về địa chỉ gửi, mặc định là SMTP user
func (s SMTPConfig) Sender() string {
	if s.From != "" {
		return s.From
	}
	return s.User
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Dùng fmt vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Đi lên dần để tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goEnv))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) rồi từ biến môi trường.
// Biến môi trường của process luôn được ưu tiên hơn file env.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("không thể load file env tại %s: %w", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("lỗi khi parse config: %w", err)
	}

	return &cfg, nil
}
