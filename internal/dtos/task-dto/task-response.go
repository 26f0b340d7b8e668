package task_dto

import (
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
)

type LogSubTaskResponse struct {
	TaskID      string              `json:"task_id"`
	DayID       string              `json:"day_id"`
	Date        entity.Date         `json:"date"`
	SubTask     entity.SubTask      `json:"sub_task"`
	HoursLogged float64             `json:"hours_logged"`
	Counters    entity.TaskCounters `json:"counters"`
}
