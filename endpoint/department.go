package endpoint

import (
	"github.com/ariebrainware/patient-referral/model"
	"github.com/ariebrainware/patient-referral/util"
	"github.com/gin-gonic/gin"
)

type departmentView struct {
	Name    string   `json:"name" example:"Neurology"`
	Doctors []string `json:"doctors" example:"Dr. Sarah Johnson"`
}

// ListDepartments godoc
// @Summary      List departments
// @Description  Return the department directory. Doctor positions are the 1-based doctor_id used when booking.
// @Tags         Department
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]departmentView} "Departments retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/departments [get]
func ListDepartments(c *gin.Context) {
	svc := requireService(c)
	if svc == nil {
		return
	}

	depts := svc.Departments()
	views := make([]departmentView, 0, len(depts))
	for _, d := range depts {
		doctors := make([]string, 0, len(d.Doctors))
		for _, name := range d.Doctors {
			doctors = append(doctors, model.DoctorDisplayName(name))
		}
		views = append(views, departmentView{Name: d.Name, Doctors: doctors})
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Departments retrieved",
		Data: views,
	})
}
