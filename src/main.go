package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"strconv"
	"time"
	"venise/src/boot"
	"venise/src/chatbot"
	"venise/src/config"
	"venise/src/lib"
	"venise/src/lib/mailer"
	"venise/src/middlewares"
	"venise/src/personnel"
	"venise/src/services"
	"venise/src/types"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/gorm"
)

const (
	apiPrefix string = "/api/v1"
)

var (
	reservationService *services.Service
	personnelService   *personnel.Service
	chatBot            *chatbot.Bot
)

var isodate validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if _, err := time.Parse(config.DATE_PARSE_FORMAT, date); err != nil {
		return false
	}
	return true
}

var clocktime validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if _, err := time.Parse(config.TIME_PARSE_FORMAT, value); err != nil {
		return false
	}
	return true
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		atoi, err := strconv.ParseBool(mm)
		if err == nil && atoi {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, err.Error())
			return
		}
	})
	return g
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func publicRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	publicHotelHandlers(apiv1)
	stayReservationHandlers(apiv1, types.KIND_ROOM)
	stayReservationHandlers(apiv1, types.KIND_APARTMENT)
	eventReservationHandlers(apiv1)
	chatbotHandlers(apiv1)
	contactHandlers(apiv1)
	attendanceHandlers(apiv1)
	return apiv1
}

func initServices(conn *gorm.DB) {
	initialStatus := types.ReservationStatus(config.DefaultReservationStatus())
	reservationService = services.NewService(
		&services.GormUnitStore{DB: conn},
		&services.GormReservationStore{DB: conn},
		mailer.New(),
		initialStatus,
	)
	personnelService = &personnel.Service{DB: conn}
	chatBot = chatbot.New(&chatbot.GormData{DB: conn}, lib.GetRedisClient())
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	conn := boot.InitDb()
	initServices(conn)
	boot.InitScheduler(&services.GormReservationStore{DB: conn}, personnelService)
	defer boot.StopScheduler()

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOriginFunc = func(origin string) bool {
			match, _ := regexp.MatchString(appHost, origin)
			if match {
				return true
			}
			match, _ = regexp.MatchString("app:mobile", origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("isodate", isodate)
		v.RegisterValidation("clocktime", clocktime)
	}

	router = maintenanceModeMiddleware(router)

	apiv1 := publicRoutes(router)

	guestAuthRoutes(apiv1)

	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	{
		authorized = userHandlers(authorized)
		authorized = reservationCommonHandlers(authorized, types.KIND_ROOM, kindRoutes(types.KIND_ROOM))
		authorized = reservationCommonHandlers(authorized, types.KIND_APARTMENT, kindRoutes(types.KIND_APARTMENT))
		authorized = reservationCommonHandlers(authorized, types.KIND_EVENT_ROOM, kindRoutes(types.KIND_EVENT_ROOM))
	}

	staff := router.Group(apiPrefix)
	staff.Use(middlewares.AuthMiddleware)
	staff.Use(middlewares.RequireRoles(string(types.ROLE_ADMIN), string(types.ROLE_SUPERADMIN)))
	{
		staff = hotelAdminHandlers(staff)
		staff = personnelHandlers(staff)
		staff = dashboardHandlers(staff)
		staff = contactAdminHandlers(staff)
	}

	superadmin := router.Group(apiPrefix)
	superadmin.Use(middlewares.AuthMiddleware)
	superadmin.Use(middlewares.RequireRoles(string(types.ROLE_SUPERADMIN)))
	{
		superadmin = superadminHandlers(superadmin)
	}

	if err := router.Run(":9090"); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
