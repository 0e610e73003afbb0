// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/internal/meta"
)

const bashCompletionScript = `# bash completion for plssctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_plssctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "tq dq ft xt di diff seal completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t --tldr"

    # Count the positional inputs already on the line
    local ninputs=0
    local idx=2
    while [[ $idx -lt ${#COMP_WORDS[@]} ]]; do
        local w=${COMP_WORDS[$idx]}
        if [[ $w != -* && $idx -ne ${COMP_CWORD} ]]; then
            ((ninputs++))
        fi
        ((idx++))
    done

    case "$cmd" in
    tq)
      local opts="$common --schema --col --suffix --config --ns --ew --save"
            ;;
        dq)
      local opts="$common --schema --col --suffix --layout --config --ns --ew --save"
            ;;
        ft)
      local opts="$common --col --trs --exclude --config --ns --ew --save"
            ;;
        xt)
      local opts="$common --schema --format --rgx --split --compact --sec-delim --twprge-delim --discard-errors --formats --save"
            ;;
        di)
            local opts="--col --config --ns --ew --filter -f --passphrase --jpath --xpath --tldr"
            ;;
        diff)
      local opts="--col --layout --diff-filter --config --ns --ew --jpath --xpath --passphrase --tldr"
            ;;
        seal)
            local opts="--passphrase -p --tldr"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text csv json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--layout" ]]; then
        COMPREPLY=( $(compgen -W "TRS_desc desc_STR S_desc_TR TR_desc_S" -- "$cur") )
        return 0
    fi

  # If current token starts with '-', offer flags
  if [[ "$cur" == -* ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # diff and seal take two positionals, everything else one
  local maxinputs=1
  if [[ "$cmd" == "diff" || "$cmd" == "seal" ]]; then
    maxinputs=2
  fi
  if [[ $ninputs -lt $maxinputs ]]; then
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
  fi

  COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
  return 0
}

complete -F _plssctl plssctl
`

const zshCompletionScript = `#compdef plssctl

_plssctl() {
  local -a cmds
  cmds=(
    'tq:tract query'
    'dq:description query'
    'ft:filter rows by TRS'
    'xt:extract TRS from raw text'
    'di:interactive description inspector'
    'diff:diff two parsed datasets'
    'seal:encrypt a dataset file'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text csv json yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'plssctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    tq)
      _arguments -C \
        $common \
        '--schema[dump appended columns]' \
        '--col[land-description column]:col' \
        '--suffix[collision suffix]:suffix' \
        '--config[parse config tokens]:config' \
        '--ns[default township direction]:ns:(n s)' \
        '--ew[default range direction]:ew:(e w)' \
        '--save[persist rows to sqlite]:save' \
        '::input:_files'
      ;;
    dq)
      _arguments -C \
        $common \
        '--schema[dump appended columns]' \
        '--col[land-description column]:col' \
        '--suffix[collision suffix]:suffix' \
        '--layout[force description layout]:layout:(TRS_desc desc_STR S_desc_TR TR_desc_S)' \
        '--config[parse config tokens]:config' \
        '--ns[default township direction]:ns:(n s)' \
        '--ew[default range direction]:ew:(e w)' \
        '--save[persist rows to sqlite]:save' \
        '::input:_files'
      ;;
    ft)
      _arguments -C \
        $common \
        '--col[land-description column]:col' \
        '--trs[TRS identifiers to match]:trs' \
        '--exclude[drop matching rows]' \
        '--config[parse config tokens]:config' \
        '--save[persist rows to sqlite]:save' \
        '::input:_files'
      ;;
    xt)
      _arguments -C \
        $common \
        '--schema[dump appended columns]' \
        '--format[extraction format]:format:(a b c)' \
        '--rgx[custom extraction pattern]:rgx' \
        '--split[section-list splitter]:split:(comma dash space)' \
        '--compact[emit one Format A line]' \
        '--sec-delim[section delimiter]:delim' \
        '--twprge-delim[twprge delimiter]:delim' \
        '--discard-errors[drop error TRS]' \
        '--formats[list preset formats]' \
        '::input:_files'
      ;;
    di)
      _arguments -C \
        '--col[land-description column]:col' \
        '--config[parse config tokens]:config' \
        '(-f --filter)'{-f,--filter}'[pre-parse row filters]:filters' \
        '(-p --passphrase)'{-p,--passphrase}'[envelope passphrase]' \
        '::input:_files'
      ;;
    diff)
      _arguments -C \
        '--col[land-description column]:col' \
        '--layout[force description layout]:layout:(TRS_desc desc_STR S_desc_TR TR_desc_S)' \
        '--diff-filter[row keys to drop before comparing]:keys' \
        '--config[parse config tokens]:config' \
        '(-p --passphrase)'{-p,--passphrase}'[envelope passphrase]' \
        '::a:_files' \
        '::b:_files'
      ;;
    seal)
      _arguments -C \
        '(-p --passphrase)'{-p,--passphrase}'[envelope passphrase]' \
        '::input:_files' \
        '::output:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:input:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _plssctl plssctl plssctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: plssctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "plssctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
