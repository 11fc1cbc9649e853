package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Nduhiu17/treasure-shop-api/internal/controllers"
)

func runOrderRouter(
	secureGroup *echo.Group,
	orderCtrl *controllers.OrderController,
	submissionCtrl *controllers.SubmissionController,
	feedbackCtrl *controllers.FeedbackController,
) {
	{
		secureGroup.POST("/orders", orderCtrl.CreateOrder)
		secureGroup.GET("/orders", orderCtrl.ListOrders)
		secureGroup.GET("/orders/:id", orderCtrl.FindOrder)
		secureGroup.GET("/orders/:id/actions", orderCtrl.GetActions)

		secureGroup.POST("/orders/:id/pay", orderCtrl.Pay)
		secureGroup.POST("/orders/:id/assign", orderCtrl.Assign)
		secureGroup.POST("/orders/:id/assignment/accept", orderCtrl.AcceptAssignment)
		secureGroup.POST("/orders/:id/assignment/reject", orderCtrl.RejectAssignment)
		secureGroup.POST("/orders/:id/start", orderCtrl.StartProgress)
		secureGroup.POST("/orders/:id/submissions", orderCtrl.SubmitWork)
		secureGroup.POST("/orders/:id/approve", orderCtrl.Approve)
		secureGroup.POST("/orders/:id/feedback", orderCtrl.RequestFeedback)
		secureGroup.POST("/orders/:id/complete", orderCtrl.MarkCompleted)

		secureGroup.GET("/orders/:id/submissions", submissionCtrl.ListSubmissions)
		secureGroup.GET("/orders/:id/feedbacks", feedbackCtrl.ListFeedbacks)
	}
}
