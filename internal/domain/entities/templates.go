package entities

import "github.com/google/uuid"

// Step templates for the three stages. The checklists are fixed and not
// user-editable; names are the shop's production wording.
//
// Skippability is an explicit per-template flag: only repair steps may be
// skipped, and never the final QC and customer-handover steps.

type stepTemplate struct {
	name      string
	skippable bool
}

var claimStepTemplates = []stepTemplate{
	{name: "ยื่นเคลม"},
	{name: "เช็ครายการ"},
	{name: "ขอราคา"},
	{name: "เสนอราคา"},
	{name: "ส่งประกัน"},
	{name: "อนุมัติ"},
	{name: "หาอะไหล่"},
	{name: "สั่งอะไหล่"},
	{name: "อะไหล่ครบ"},
	{name: "นัดคิวเข้า"},
	{name: "ลูกค้าเข้าจอด"},
	{name: "เสนอเพิ่ม"},
	{name: "รถเสร็จ(เตรียมซ่อม)"},
}

var repairStepTemplates = []stepTemplate{
	{name: "รื้อถอน", skippable: true},
	{name: "เคาะ", skippable: true},
	{name: "เบิกอะไหล่", skippable: true},
	{name: "โป้วสี", skippable: true},
	{name: "พ่นสีพื้น", skippable: true},
	{name: "พ่นสีจริง", skippable: true},
	{name: "ประกอบ", skippable: true},
	{name: "ขัดสี", skippable: true},
	{name: "ล้างรถ", skippable: true},
	{name: "QC"},
	{name: "ลูกค้ารับรถ"},
}

var billingStepTemplates = []stepTemplate{
	{name: "รถเสร็จสมบูรณ์"},
	{name: "เรียงรูป"},
	{name: "ส่งอนุมัติ"},
	{name: "ส่งอนุมัติเสร็จ"},
	{name: "ออกใบกำกับภาษี"},
	{name: "เรียงเรื่อง"},
	{name: "นำเรื่องตั้งเบิก"},
	{name: "วันตั้งเบิก"},
}

// NewInitialStages builds the three-stage workflow for a new job: claim
// unlocked, repair and billing locked, every step pending.
func NewInitialStages() []Stage {
	return []Stage{
		{
			Code:       StageClaim,
			Name:       "1. ขั้นตอนการเคลม",
			OrderIndex: 0,
			IsLocked:   false,
			Steps:      buildSteps(claimStepTemplates),
		},
		{
			Code:       StageRepair,
			Name:       "2. ขั้นตอนการซ่อม",
			OrderIndex: 1,
			IsLocked:   true,
			Steps:      buildSteps(repairStepTemplates),
		},
		{
			Code:       StageBilling,
			Name:       "3. ขั้นตอนตั้งเบิก",
			OrderIndex: 2,
			IsLocked:   true,
			Steps:      buildSteps(billingStepTemplates),
		},
	}
}

func buildSteps(templates []stepTemplate) []Step {
	steps := make([]Step, 0, len(templates))
	for i, t := range templates {
		steps = append(steps, Step{
			ID:          uuid.NewString(),
			Name:        t.name,
			OrderIndex:  i,
			IsSkippable: t.skippable,
			Status:      StepStatusPending,
		})
	}
	return steps
}
