package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	adminget "pool-quote/http-server/admin/get"
	"pool-quote/http-server/admin/remove"
	adminsave "pool-quote/http-server/admin/save"
	adminupdate "pool-quote/http-server/admin/update"
	"pool-quote/http-server/calculate"
	generate_excel "pool-quote/http-server/generate-report/generate-excel"
	getproject "pool-quote/http-server/projects/get"
	saveproject "pool-quote/http-server/projects/save"
	upproject "pool-quote/http-server/projects/update"
	getquote "pool-quote/http-server/quotes/get"
	savequote "pool-quote/http-server/quotes/save"
	upquote "pool-quote/http-server/quotes/update"
	"pool-quote/internal/config"
	"pool-quote/internal/middleware/auth"
	genexcel "pool-quote/internal/service/generate-excel"
	"pool-quote/internal/service/quote"
	"pool-quote/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, st *mysql.Storage, quoteService *quote.QuoteService, excelService *genexcel.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Бассейны для мастера предложения
	router.Get("/api/pools", adminget.List(log, "handlers.pools.List", st.ListPoolSpecifications))
	router.Get("/api/pools/{id}", adminget.ByID(log, "handlers.pools.Get", st.GetPoolSpecification))

	// Проекты клиентов
	router.Post("/api/projects", saveproject.CreateProject(log, st))
	router.Get("/api/projects", getproject.ListProjects(log, st))
	router.Get("/api/projects/{id}", getproject.GetProject(log, st))
	router.Put("/api/projects/{id}", upproject.UpdateProject(log, st))
	router.Get("/api/projects/{id}/quotes", getproject.ListProjectQuotes(log, st))

	// Предложения
	router.Post("/api/projects/{id}/quotes", savequote.CreateQuote(log, quoteService))
	router.Get("/api/quotes/{id}", getquote.GetQuote(log, st))
	router.Put("/api/quotes/{id}/status", upquote.UpdateQuoteStatus(log, st))
	router.Get("/api/quotes/{id}/price", getquote.PriceQuote(log, quoteService))
	router.Get("/api/quotes/{id}/excel", generate_excel.QuoteExcel(log, excelService))

	// Расчёты без сохранения
	router.Post("/api/pricing/calculate", calculate.CalculateSnapshot(log, quoteService))
	router.Get("/api/pricing/hwi", calculate.HWI(log))
	router.Post("/api/pricing/excavation", calculate.Excavation(log))
	router.Post("/api/pricing/filtration", calculate.Filtration(log))
	router.Get("/api/pricing/pools", calculate.PoolPricing(log, quoteService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	crud(adminRouter, log, "/pools", "PoolSpecification",
		st.ListPoolSpecifications, st.GetPoolSpecification, st.CreatePoolSpecification, st.UpdatePoolSpecification, st.DeletePoolSpecification)
	adminRouter.Get("/pools/{id}/costs", adminget.ListByParent(log, "handlers.admin.ListPoolCosts", "id", st.ListPoolCosts))
	adminRouter.Get("/pools/{id}/general-extras", adminget.ListByParent(log, "handlers.admin.ListPoolGeneralExtras", "id", st.ListPoolGeneralExtras))
	adminRouter.Put("/pools/{id}/margin", adminupdate.UpsertPoolMargin(log, st))
	adminRouter.Get("/pool-margins", adminget.List(log, "handlers.admin.ListPoolMargins", st.ListPoolMargins))

	adminRouter.Post("/pool-costs", adminsave.Create(log, "handlers.admin.CreatePoolCost", st.CreatePoolCost))
	adminRouter.Put("/pool-costs/{id}", adminupdate.Update(log, "handlers.admin.UpdatePoolCost", st.UpdatePoolCost))
	adminRouter.Delete("/pool-costs/{id}", remove.Delete(log, "handlers.admin.DeletePoolCost", st.DeletePoolCost))

	crud(adminRouter, log, "/fixed-costs", "FixedCost",
		st.ListFixedCosts, st.GetFixedCost, st.CreateFixedCost, st.UpdateFixedCost, st.DeleteFixedCost)
	crud(adminRouter, log, "/crane-costs", "CraneCost",
		st.ListCraneCosts, st.GetCraneCost, st.CreateCraneCost, st.UpdateCraneCost, st.DeleteCraneCost)
	crud(adminRouter, log, "/dig-types", "DigType",
		st.ListDigTypes, st.GetDigType, st.CreateDigType, st.UpdateDigType, st.DeleteDigType)

	adminRouter.Get("/filtration-components", adminget.FiltrationComponents(log, st))
	adminRouter.Get("/filtration-components/{id}", adminget.ByID(log, "handlers.admin.GetFiltrationComponent", st.GetFiltrationComponent))
	adminRouter.Post("/filtration-components", adminsave.Create(log, "handlers.admin.CreateFiltrationComponent", st.CreateFiltrationComponent))
	adminRouter.Put("/filtration-components/{id}", adminupdate.Update(log, "handlers.admin.UpdateFiltrationComponent", st.UpdateFiltrationComponent))
	adminRouter.Delete("/filtration-components/{id}", remove.Delete(log, "handlers.admin.DeleteFiltrationComponent", st.DeleteFiltrationComponent))

	crud(adminRouter, log, "/filtration-packages", "FiltrationPackage",
		st.ListFiltrationPackages, st.GetFiltrationPackage, st.CreateFiltrationPackage, st.UpdateFiltrationPackage, st.DeleteFiltrationPackage)
	adminRouter.Get("/filtration-packages/{id}/details", adminget.ByID(log, "handlers.admin.GetFiltrationPackageDetails", st.GetFiltrationPackageDetails))

	crud(adminRouter, log, "/handover-kits", "HandoverKitPackage",
		st.ListHandoverKitPackages, st.GetHandoverKitPackage, st.CreateHandoverKitPackage, st.UpdateHandoverKitPackage, st.DeleteHandoverKitPackage)

	crud(adminRouter, log, "/general-extras", "GeneralExtra",
		st.ListGeneralExtras, st.GetGeneralExtra, st.CreateGeneralExtra, st.UpdateGeneralExtra, st.DeleteGeneralExtra)
	adminRouter.Post("/pool-general-extras", adminsave.Create(log, "handlers.admin.CreatePoolGeneralExtra", st.CreatePoolGeneralExtra))
	adminRouter.Delete("/pool-general-extras/{id}", remove.Delete(log, "handlers.admin.DeletePoolGeneralExtra", st.DeletePoolGeneralExtra))

	crud(adminRouter, log, "/heat-pumps", "HeatPump",
		st.ListHeatPumps, st.GetHeatPump, st.CreateHeatPump, st.UpdateHeatPump, st.DeleteHeatPump)
	adminRouter.Get("/heat-pump-compatibility", adminget.List(log, "handlers.admin.ListHeatPumpCompatibility", st.ListHeatPumpCompatibility))
	adminRouter.Post("/heat-pump-compatibility", adminsave.Create(log, "handlers.admin.CreateHeatPumpCompatibility", st.CreateHeatPumpCompatibility))
	adminRouter.Delete("/heat-pump-compatibility/{id}", remove.Delete(log, "handlers.admin.DeleteHeatPumpCompatibility", st.DeleteHeatPumpCompatibility))

	router.Mount("/api/admin", adminRouter)

	frontend(router, cfg, log)

	return router
}

// crud вешает стандартные пять маршрутов справочника.
func crud[T any](r chi.Router, log *slog.Logger, path, name string,
	list adminget.ListFunc[T],
	byID adminget.GetFunc[T],
	create adminsave.CreateFunc[T],
	update adminupdate.UpdateFunc[T],
	del remove.DeleteFunc,
) {
	op := "handlers.admin." + name

	r.Get(path, adminget.List(log, op+".List", list))
	r.Get(path+"/{id}", adminget.ByID(log, op+".Get", byID))
	r.Post(path, adminsave.Create(log, op+".Create", create))
	r.Put(path+"/{id}", adminupdate.Update(log, op+".Update", update))
	r.Delete(path+"/{id}", remove.Delete(log, op+".Delete", del))
}

// frontend отдаёт собранные UI продаж и админки. Без папки сервер работает как чистый API.
func frontend(router *chi.Mux, cfg config.Config, log *slog.Logger) {
	frontendDir := cfg.FrontendDir
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("Папка фронтенда не найдена, статика не раздаётся", "path", frontendDir)
		return
	}

	fileServer := http.FileServer(http.Dir(frontendDir))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass)).Handle("/admin/*",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
		}),
	)

	// SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})
}
