package routes

import (
	"renthub/controllers"

	"github.com/gin-gonic/gin"
)

func SetupInterviewRoutes(router *gin.RouterGroup) {
	router.POST("/api/interview/evaluate", controllers.EvaluateInterview)
	router.GET("/api/interview/evaluations/:submissionId", controllers.GetEvaluation)
	router.GET("/api/interview/evaluations/:submissionId/shared", controllers.GetSharedEvaluation)
}
