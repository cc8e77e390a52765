package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"collateral-server/modules/collateral"
	"collateral-server/modules/common/config"
	"collateral-server/modules/common/gemini"
	"collateral-server/modules/common/metrics"
	generateimage "collateral-server/modules/generate-image"
	"collateral-server/modules/prompt"
)

// CORS 헤더 추가
func enableCORS(allowedOrigins string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "collateral-server",
	})
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	client, err := gemini.NewClient(cfg.GeminiAPIKeys)
	if err != nil {
		log.Fatalf("❌ Failed to create Gemini client: %v", err)
	}

	promptService := prompt.NewService(client, cfg.TextModel)
	generateService := generateimage.NewService(client, cfg.ImageModel)
	collateralService := collateral.NewService(client, cfg.TextModel, cfg.ImageModel)

	// 라우터 설정
	r := mux.NewRouter()

	// CORS 미들웨어 적용
	r.Use(enableCORS(cfg.AllowedOrigins))
	r.Use(metrics.Middleware)

	// 라우트 설정
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/healthz", healthCheck).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	prompt.NewPromptHandler(promptService).RegisterRoutes(r)
	generateimage.NewGenerateHandler(generateService).RegisterRoutes(r)
	collateral.NewCollateralHandler(collateralService).RegisterRoutes(r)

	log.Printf("🚀 Collateral Server starting on port %s", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("📊 Metrics: http://localhost:%s/metrics", cfg.Port)
	log.Printf("🎨 Text model: %s / Image model: %s", cfg.TextModel, cfg.ImageModel)

	// 서버 시작
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
