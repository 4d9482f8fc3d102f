package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"edu-center/backend/internal/model"
	"edu-center/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoMembers    = errors.New("该小组暂无成员")
	ErrExportNoSlots      = errors.New("该小组暂无课程表")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 小组花名册与周课程表分别导出为 Excel (.xlsx)
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportRoster 导出小组花名册
	ExportRoster(ctx context.Context, groupID string) (*bytes.Buffer, string, error)
	// ExportSchedule 导出小组周课程表（仅活跃时间块）
	ExportSchedule(ctx context.Context, groupID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportRoster — 导出小组花名册
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 标题行：小组名
//   - 表头: | # | 姓 | 名 | 电话 | 邮箱 |
//   - 按姓氏排序（与成员列表一致）

func (s *exportService) ExportRoster(ctx context.Context, groupID string) (*bytes.Buffer, string, error) {
	group, err := s.repo.Group.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrGroupNotFound
		}
		s.logger.Error("查询小组失败", zap.Error(err))
		return nil, "", err
	}

	students, err := s.repo.Student.ListByGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("查询小组成员失败", zap.Error(err))
		return nil, "", err
	}
	if len(students) == 0 {
		return nil, "", ErrExportNoMembers
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "花名册"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "C", 16)
	f.SetColWidth(sheetName, "D", "D", 18)
	f.SetColWidth(sheetName, "E", "E", 28)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — 花名册", group.Name))
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"#", "姓", "名", "电话", "邮箱"}
	for i, hdr := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 2), hdr)
	}

	// 数据行
	row := 3
	for i := range students {
		st := &students[i]
		email := ""
		if st.User != nil {
			email = st.User.Email
		}
		f.SetCellValue(sheetName, cell("A", row), row-2)
		f.SetCellValue(sheetName, cell("B", row), st.LastName)
		f.SetCellValue(sheetName, cell("C", row), st.FirstName)
		f.SetCellValue(sheetName, cell("D", row), st.Phone)
		f.SetCellValue(sheetName, cell("E", row), email)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("花名册_%s.xlsx", group.Name)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportSchedule — 导出小组周课程表
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 表头: | 星期 | 时间 | 教室 |
//   - 行按周一 ~ 周日排序，仅含活跃时间块

func (s *exportService) ExportSchedule(ctx context.Context, groupID string) (*bytes.Buffer, string, error) {
	group, err := s.repo.Group.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrGroupNotFound
		}
		s.logger.Error("查询小组失败", zap.Error(err))
		return nil, "", err
	}

	slots, err := s.repo.ScheduleSlot.ListByGroup(ctx, groupID, true)
	if err != nil {
		s.logger.Error("查询课程表失败", zap.Error(err))
		return nil, "", err
	}
	if len(slots) == 0 {
		return nil, "", ErrExportNoSlots
	}

	sort.Slice(slots, func(i, j int) bool {
		return model.DayOrder[slots[i].DayOfWeek] < model.DayOrder[slots[j].DayOfWeek]
	})

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "课程表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 16)
	f.SetColWidth(sheetName, "C", "C", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — 周课程表", group.Name))
	f.MergeCell(sheetName, "A1", "C1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	f.SetCellValue(sheetName, "A2", "星期")
	f.SetCellValue(sheetName, "B2", "时间")
	f.SetCellValue(sheetName, "C2", "教室")

	row := 3
	for i := range slots {
		sl := &slots[i]
		f.SetCellValue(sheetName, cell("A", row), sl.DayOfWeek)
		f.SetCellValue(sheetName, cell("B", row), fmt.Sprintf("%s-%s", sl.StartTime, sl.EndTime))
		f.SetCellValue(sheetName, cell("C", row), sl.Room)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("课程表_%s.xlsx", group.Name)
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
