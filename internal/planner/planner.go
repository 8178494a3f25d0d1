package planner

import (
	"path/filepath"
	"strings"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

type Planner struct {
	destRoot       string
	imageDirName   string
	videoDirName   string
	unknownDirName string
}

func New(destRoot, imageDirName, videoDirName, unknownDirName string) *Planner {
	return &Planner{
		destRoot:       destRoot,
		imageDirName:   imageDirName,
		videoDirName:   videoDirName,
		unknownDirName: unknownDirName,
	}
}

// Plan computes the destination for a classified file:
// destRoot/<category>/<year>/<monthname>/<stamp><ext>. The path is a
// pure function of kind and resolved time; directories are created
// later by the placement step.
func (p *Planner) Plan(entry types.FileEntry, kind types.MediaKind, rt types.ResolvedTime) types.PlaceTask {
	task := types.PlaceTask{
		Source: entry,
		Kind:   kind,
		Time:   rt,
	}

	year := rt.Time.Format("2006")
	month := strings.ToLower(rt.Time.Month().String())

	task.DestDir = filepath.Join(p.destRoot, p.categoryDir(kind), year, month)
	task.DestPath = filepath.Join(task.DestDir, rt.Stamp()+lowerExt(entry.Name))
	return task
}

// CategoryRoots lists the three top-level category directories.
func (p *Planner) CategoryRoots() []string {
	return []string{
		filepath.Join(p.destRoot, p.imageDirName),
		filepath.Join(p.destRoot, p.videoDirName),
		filepath.Join(p.destRoot, p.unknownDirName),
	}
}

func (p *Planner) categoryDir(kind types.MediaKind) string {
	switch kind {
	case types.KindImage:
		return p.imageDirName
	case types.KindVideo:
		return p.videoDirName
	default:
		return p.unknownDirName
	}
}

func lowerExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
